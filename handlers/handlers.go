// Package handlers implements the REST API for contacts and categories.
package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/satheeshds/contacts/store"
)

// Error messages returned in {"error": ...} bodies.
const (
	msgInvalidJSON         = "invalid JSON"
	msgCategoryNotUnique   = "Category name must be unique"
	msgCategoryNotFound    = "Category not found"
	msgCategoryNotExist    = "Category does not exist"
	msgCategoryHasContacts = "Cannot delete category with associated contacts"
	msgContactNotFound     = "Contact not found"
)

// Handler serves the API from an explicitly injected store.
type Handler struct {
	Store store.Store
}

// New returns a handler backed by s.
func New(s store.Store) *Handler {
	return &Handler{Store: s}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r chi.Router) {
	// Categories
	r.Get("/categories", h.ListCategories)
	r.Post("/categories", h.CreateCategory)
	r.Get("/categories/{id}", h.GetCategory)
	r.Put("/categories/{id}", h.UpdateCategory)
	r.Delete("/categories/{id}", h.DeleteCategory)
	r.Get("/categories/{id}/contacts", h.ListCategoryContacts)

	// Contacts
	r.Get("/contacts", h.ListContacts)
	r.Post("/contacts", h.CreateContact)
	r.Get("/contacts/{id}", h.GetContact)
	r.Put("/contacts/{id}", h.UpdateContact)
	r.Delete("/contacts/{id}", h.DeleteContact)
}
