package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satheeshds/contacts/models"
)

// Memory implements [Store] with two insertion-ordered slices.
type Memory struct {
	mu         sync.RWMutex
	contacts   []models.Contact
	categories []models.Category

	now   func() time.Time
	newID func() string
}

var _ Store = (*Memory)(nil)

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *Memory) AddContact(_ context.Context, c models.Contact) (models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	c.Date = s.now()
	s.contacts = append(s.contacts, c)
	return c, nil
}

func (s *Memory) ListContacts(_ context.Context) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *Memory) GetContact(_ context.Context, id string) (models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.contactIndex(id)
	if i < 0 {
		return models.Contact{}, ErrNotFound
	}
	return s.contacts[i], nil
}

func (s *Memory) UpdateContact(_ context.Context, id string, p models.ContactPatch) (models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndex(id)
	if i < 0 {
		return models.Contact{}, ErrNotFound
	}
	s.contacts[i] = p.Apply(s.contacts[i])
	return s.contacts[i], nil
}

func (s *Memory) DeleteContact(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.contactIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return nil
}

func (s *Memory) ListContactsByCategory(_ context.Context, categoryID string) ([]models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contactsByCategory(categoryID), nil
}

func (s *Memory) AddCategory(_ context.Context, c models.Category) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Memory) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *Memory) GetCategory(_ context.Context, id string) (models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.categoryIndex(id)
	if i < 0 {
		return models.Category{}, ErrNotFound
	}
	return s.categories[i], nil
}

func (s *Memory) UpdateCategory(_ context.Context, id string, p models.CategoryPatch) (models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.categoryIndex(id)
	if i < 0 {
		return models.Category{}, ErrNotFound
	}
	s.categories[i] = p.Apply(s.categories[i])
	return s.categories[i], nil
}

func (s *Memory) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.contactsByCategory(id)) > 0 {
		return ErrConflict
	}
	i := s.categoryIndex(id)
	if i < 0 {
		return ErrNotFound
	}
	s.categories = slices.Delete(s.categories, i, i+1)
	return nil
}

func (s *Memory) IsCategoryNameUnique(_ context.Context, name, excludeID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !slices.ContainsFunc(s.categories, func(c models.Category) bool {
		return c.Name == name && c.ID != excludeID
	}), nil
}

func (s *Memory) contactIndex(id string) int {
	return slices.IndexFunc(s.contacts, func(c models.Contact) bool { return c.ID == id })
}

func (s *Memory) categoryIndex(id string) int {
	return slices.IndexFunc(s.categories, func(c models.Category) bool { return c.ID == id })
}

// contactsByCategory must be called with s.mu held.
func (s *Memory) contactsByCategory(categoryID string) []models.Contact {
	out := []models.Contact{}
	for _, c := range s.contacts {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out
}
