package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/contacts/handlers"
	"github.com/satheeshds/contacts/models"
	"github.com/satheeshds/contacts/store"
)

func newTestClient(t *testing.T) (*Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	router := handlers.NewRouter(handlers.RouterOptions{Store: store.NewMemory()})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 0), &calls
}

func contactInput(categoryID string) models.ContactInput {
	return models.ContactInput{
		Name:        "Ann",
		Surname:     "Lee",
		Bio:         "hi",
		PhoneNumber: "+12345678901",
		Email:       "ann@x.com",
		CategoryID:  categoryID,
	}
}

func TestClientCRUD(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	cat, err := c.CreateCategory(ctx, models.CategoryInput{Name: "Friends"})
	require.NoError(t, err)

	created, err := c.CreateContact(ctx, contactInput(cat.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := c.GetContact(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "ann@x.com", got.Email)

	in := contactInput(cat.ID)
	in.Bio = "updated"
	updated, err := c.UpdateContact(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Bio)

	byCategory, err := c.ListContactsByCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Len(t, byCategory, 1)

	renamed, err := c.UpdateCategory(ctx, cat.ID, models.CategoryInput{Name: "Pals"})
	require.NoError(t, err)
	assert.Equal(t, "Pals", renamed.Name)

	gotCat, err := c.GetCategory(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, renamed, gotCat)

	err = c.DeleteCategory(ctx, cat.ID)
	assert.True(t, IsConflict(err), "%v", err)

	require.NoError(t, c.DeleteContact(ctx, created.ID))
	require.NoError(t, c.DeleteCategory(ctx, cat.ID))

	_, err = c.GetContact(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	contacts, err := c.ListContacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	categories, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestClientValidatesBeforeSending(t *testing.T) {
	c, calls := newTestClient(t)
	ctx := context.Background()

	in := contactInput("c1")
	in.Email = "annx.com"
	_, err := c.CreateContact(ctx, in)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{models.MsgEmailFormat}, verr.Errors)

	_, err = c.CreateCategory(ctx, models.CategoryInput{})
	require.ErrorAs(t, err, &verr)

	assert.Zero(t, calls.Load())
}

func TestClientServerErrors(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.CreateContact(ctx, contactInput("missing"))
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Category does not exist", apiErr.Message)
	assert.Equal(t, "400 Bad Request: Category does not exist", apiErr.Error())

	_, err = c.CreateCategory(ctx, models.CategoryInput{Name: "Work"})
	require.NoError(t, err)
	_, err = c.CreateCategory(ctx, models.CategoryInput{Name: "Work"})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Category name must be unique", apiErr.Message)
	assert.False(t, IsConflict(err))
}

func TestFilterByCategory(t *testing.T) {
	contacts := []models.Contact{
		{ID: "1", CategoryID: "a"},
		{ID: "2", CategoryID: "b"},
		{ID: "3", CategoryID: "c"},
		{ID: "4", CategoryID: "a"},
	}

	assert.Equal(t, contacts, FilterByCategory(contacts))
	assert.Equal(t, []models.Contact{contacts[0], contacts[3]}, FilterByCategory(contacts, "a"))
	assert.Equal(t, []models.Contact{contacts[0], contacts[1], contacts[3]}, FilterByCategory(contacts, "b", "a"))
	assert.Empty(t, FilterByCategory(contacts, "zzz"))
}
