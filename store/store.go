// Package store holds the contact and category repositories.
package store

import (
	"context"
	"errors"

	"github.com/satheeshds/contacts/models"
)

var (
	// ErrNotFound is returned when no entity has the requested id.
	ErrNotFound = errors.New("store: object not found")
	// ErrConflict is returned when deleting a category that contacts still reference.
	ErrConflict = errors.New("cannot delete category with associated contacts")
)

// Store is the repository used by the HTTP handlers. Lists are returned in
// insertion order and are never nil.
type Store interface {
	AddContact(ctx context.Context, c models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, id string, p models.ContactPatch) (models.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	ListContactsByCategory(ctx context.Context, categoryID string) ([]models.Contact, error)

	AddCategory(ctx context.Context, c models.Category) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id string) (models.Category, error)
	UpdateCategory(ctx context.Context, id string, p models.CategoryPatch) (models.Category, error)
	// DeleteCategory fails with ErrConflict, before removing anything, while
	// any contact references the category.
	DeleteCategory(ctx context.Context, id string) error
	// IsCategoryNameUnique reports whether no category other than excludeID
	// has exactly this name.
	IsCategoryNameUnique(ctx context.Context, name, excludeID string) (bool, error)
}
