package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satheeshds/contacts/models"
)

const contactSelectQuery = `SELECT id, name, surname, bio, phone_number, email, address, created_at, category_id
	FROM contacts`

const categorySelectQuery = `SELECT id, name FROM categories`

func scanContact(scanner interface{ Scan(...any) error }) (models.Contact, error) {
	var c models.Contact
	err := scanner.Scan(&c.ID, &c.Name, &c.Surname, &c.Bio, &c.PhoneNumber, &c.Email, &c.Address, &c.Date, &c.CategoryID)
	c.Date = c.Date.UTC()
	return c, err
}

func scanCategory(scanner interface{ Scan(...any) error }) (models.Category, error) {
	var c models.Category
	err := scanner.Scan(&c.ID, &c.Name)
	return c, err
}

// SQL implements [Store] on a database prepared by db.Migrate.
type SQL struct {
	db *sql.DB

	now   func() time.Time
	newID func() string
}

var _ Store = (*SQL)(nil)

// NewSQL returns a store backed by db. Timestamps are truncated to the
// microsecond precision of TIMESTAMP columns.
func NewSQL(db *sql.DB) *SQL {
	return &SQL{
		db:    db,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID: uuid.NewString,
	}
}

func (s *SQL) AddContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	c.ID = s.newID()
	c.Date = s.now()
	_, err := s.db.ExecContext(ctx, `INSERT INTO contacts
		(id, name, surname, bio, phone_number, email, address, created_at, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Surname, c.Bio, c.PhoneNumber, c.Email, c.Address, c.Date, c.CategoryID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("insert contact: %w", err)
	}
	return c, nil
}

func (s *SQL) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.queryContacts(ctx, contactSelectQuery+" ORDER BY seq")
}

func (s *SQL) GetContact(ctx context.Context, id string) (models.Contact, error) {
	c, err := scanContact(s.db.QueryRowContext(ctx, contactSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

func (s *SQL) UpdateContact(ctx context.Context, id string, p models.ContactPatch) (models.Contact, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Contact{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	c, err := scanContact(tx.QueryRowContext(ctx, contactSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, ErrNotFound
	}
	if err != nil {
		return models.Contact{}, fmt.Errorf("get contact: %w", err)
	}

	c = p.Apply(c)
	_, err = tx.ExecContext(ctx, `UPDATE contacts SET name = ?, surname = ?, bio = ?, phone_number = ?,
		email = ?, address = ?, category_id = ? WHERE id = ?`,
		c.Name, c.Surname, c.Bio, c.PhoneNumber, c.Email, c.Address, c.CategoryID, id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("update contact: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Contact{}, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}

func (s *SQL) DeleteContact(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQL) ListContactsByCategory(ctx context.Context, categoryID string) ([]models.Contact, error) {
	return s.queryContacts(ctx, contactSelectQuery+" WHERE category_id = ? ORDER BY seq", categoryID)
}

func (s *SQL) AddCategory(ctx context.Context, c models.Category) (models.Category, error) {
	c.ID = s.newID()
	_, err := s.db.ExecContext(ctx, "INSERT INTO categories (id, name) VALUES (?, ?)", c.ID, c.Name)
	if err != nil {
		return models.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (s *SQL) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, categorySelectQuery+" ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQL) GetCategory(ctx context.Context, id string) (models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, categorySelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (s *SQL) UpdateCategory(ctx context.Context, id string, p models.CategoryPatch) (models.Category, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Category{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	c, err := scanCategory(tx.QueryRowContext(ctx, categorySelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("get category: %w", err)
	}

	c = p.Apply(c)
	if _, err := tx.ExecContext(ctx, "UPDATE categories SET name = ? WHERE id = ?", c.Name, id); err != nil {
		return models.Category{}, fmt.Errorf("update category: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.Category{}, fmt.Errorf("commit: %w", err)
	}
	return c, nil
}

func (s *SQL) DeleteCategory(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts WHERE category_id = ?", id).Scan(&n); err != nil {
		return fmt.Errorf("count contacts: %w", err)
	}
	if n > 0 {
		return ErrConflict
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (s *SQL) IsCategoryNameUnique(ctx context.Context, name, excludeID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories WHERE name = ? AND id <> ?", name, excludeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count categories: %w", err)
	}
	return n == 0, nil
}

func (s *SQL) queryContacts(ctx context.Context, query string, args ...any) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
