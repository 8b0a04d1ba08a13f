package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/satheeshds/contacts/models"
	"github.com/satheeshds/contacts/store"
)

// ListCategories lists all categories
// @Summary      List categories
// @Description  Get all categories in creation order.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   models.Category
// @Failure      500  {object}  ErrorResponse
// @Router       /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetCategory retrieves a single category by ID
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {object}  models.Category
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.Store.GetCategory(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgCategoryNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		writeJSON(w, http.StatusOK, c)
	}
}

// CreateCategory creates a new category
// @Summary      Create category
// @Description  Create a category. Names must be unique (case-sensitive).
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category  body      models.CategoryInput  true  "Category contents"
// @Success      201       {object}  models.Category
// @Failure      400       {object}  ErrorResponse
// @Router       /categories [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input models.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	unique, err := h.Store.IsCategoryNameUnique(r.Context(), input.Name, "")
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	if !unique {
		writeError(w, http.StatusBadRequest, msgCategoryNotUnique)
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	c, err := h.Store.AddCategory(r.Context(), models.Category{Name: input.Name})
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCategory updates an existing category
// @Summary      Update category
// @Description  Rename a category. Keeping the current name is allowed.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id        path      string                true  "Category ID"
// @Param        category  body      models.CategoryInput  true  "Updated category contents"
// @Success      200       {object}  models.Category
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /categories/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.CategoryInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	unique, err := h.Store.IsCategoryNameUnique(r.Context(), input.Name, id)
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	if !unique {
		writeError(w, http.StatusBadRequest, msgCategoryNotUnique)
		return
	}
	if errs := input.Validate(); len(errs) > 0 {
		writeErrors(w, http.StatusBadRequest, errs)
		return
	}

	c, err := h.Store.UpdateCategory(r.Context(), id, input.Patch())
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgCategoryNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		writeJSON(w, http.StatusOK, c)
	}
}

// DeleteCategory deletes a category
// @Summary      Delete category
// @Description  Remove a category. Fails while any contact belongs to it.
// @Tags         categories
// @Param        id   path      string  true  "Category ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /categories/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteCategory(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrConflict):
		writeError(w, http.StatusBadRequest, msgCategoryHasContacts)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, msgCategoryNotFound)
	case err != nil:
		writeInternal(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCategoryContacts lists the contacts of a category
// @Summary      List contacts in category
// @Tags         categories
// @Produce      json
// @Param        id   path      string  true  "Category ID"
// @Success      200  {array}   models.Contact
// @Failure      500  {object}  ErrorResponse
// @Router       /categories/{id}/contacts [get]
func (h *Handler) ListCategoryContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Store.ListContactsByCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}
