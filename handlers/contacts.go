package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satheeshds/contacts/models"
	"github.com/satheeshds/contacts/store"
)

// ListContacts lists all contacts
// @Summary      List contacts
// @Description  Get all contacts in creation order. Filtering by category is done by the client.
// @Tags         contacts
// @Produce      json
// @Success      200  {array}   models.Contact
// @Failure      500  {object}  ErrorResponse
// @Router       /contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Store.ListContacts(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

// GetContact retrieves a single contact by ID
// @Summary      Get contact
// @Tags         contacts
// @Produce      json
// @Param        id   path      string  true  "Contact ID"
// @Success      200  {object}  models.Contact
// @Failure      404  {object}  ErrorResponse
// @Router       /contacts/{id} [get]
func (h *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.GetContact(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgContactNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		writeJSON(w, http.StatusOK, c)
	}
}

// CreateContact creates a new contact
// @Summary      Create contact
// @Description  Create a contact in an existing category.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        contact  body      models.ContactInput  true  "Contact contents"
// @Success      201      {object}  models.Contact
// @Failure      400      {object}  ErrorResponse
// @Router       /contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	exists, err := h.categoryExists(r.Context(), input.CategoryID)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	if !exists {
		writeError(w, http.StatusBadRequest, msgCategoryNotExist)
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	c, err := h.Store.AddContact(r.Context(), input.Contact())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateContact updates an existing contact
// @Summary      Update contact
// @Description  Validate and merge the supplied fields into a contact. An omitted address keeps its stored value.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Contact ID"
// @Param        contact  body      models.ContactInput  true  "Updated contact contents"
// @Success      200      {object}  models.Contact
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /contacts/{id} [put]
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ContactInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if input.CategoryID != "" {
		exists, err := h.categoryExists(r.Context(), input.CategoryID)
		if err != nil {
			writeInternal(w, r, err)
			return
		}
		if !exists {
			writeError(w, http.StatusBadRequest, msgCategoryNotExist)
			return
		}
	}
	if errs := input.Validate(); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	c, err := h.Store.UpdateContact(r.Context(), id, input.Patch())
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgContactNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		writeJSON(w, http.StatusOK, c)
	}
}

// DeleteContact deletes a contact
// @Summary      Delete contact
// @Tags         contacts
// @Param        id   path      string  true  "Contact ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /contacts/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteContact(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgContactNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) categoryExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	_, err := h.Store.GetCategory(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
