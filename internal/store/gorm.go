// Package store implements the persistence facade over gorm. Each entity type
// registers a binding that maps between its gorm model and the neutral
// attribute-map record the resource layer works with.
package store

import (
	"errors"

	"ledgerman/backend/internal/resource"

	"gorm.io/gorm"
)

// Store is the gorm-backed implementation of resource.Store.
type Store struct {
	db *gorm.DB
}

// New wraps a gorm handle. The handle is injected, never global, so tests can
// hand in an ephemeral in-memory database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get fetches one row by id.
func (s *Store) Get(typeTag string, id uint) (resource.Entity, error) {
	b, err := bindingFor(typeTag)
	if err != nil {
		return resource.Entity{}, err
	}

	m := b.model()
	if err := s.db.First(m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Entity{}, resource.ErrNotFound
		}
		return resource.Entity{}, err
	}
	return b.entity(typeTag, m), nil
}

// SelectAll fetches every row of a type.
func (s *Store) SelectAll(typeTag string) ([]resource.Entity, error) {
	b, err := bindingFor(typeTag)
	if err != nil {
		return nil, err
	}

	slice := b.slice()
	if err := s.db.Find(slice).Error; err != nil {
		return nil, err
	}

	return b.entities(typeTag, slice), nil
}

// Create inserts a row built from coerced attributes and returns it with the
// id the database assigned.
func (s *Store) Create(typeTag string, attrs map[string]any) (resource.Entity, error) {
	b, err := bindingFor(typeTag)
	if err != nil {
		return resource.Entity{}, err
	}

	m := b.model()
	if err := b.apply(m, attrs); err != nil {
		return resource.Entity{}, err
	}
	if err := s.db.Create(m).Error; err != nil {
		return resource.Entity{}, err
	}
	return b.entity(typeTag, m), nil
}

// Update applies mutated attributes to an existing row.
func (s *Store) Update(e resource.Entity, attrs map[string]any) (resource.Entity, error) {
	b, err := bindingFor(e.Type)
	if err != nil {
		return resource.Entity{}, err
	}

	m := b.model()
	if err := s.db.First(m, e.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resource.Entity{}, resource.ErrNotFound
		}
		return resource.Entity{}, err
	}

	if err := b.apply(m, attrs); err != nil {
		return resource.Entity{}, err
	}
	if err := s.db.Save(m).Error; err != nil {
		return resource.Entity{}, err
	}
	return b.entity(e.Type, m), nil
}

// Delete removes a row. Removing an id with no row behind it succeeds.
func (s *Store) Delete(typeTag string, id uint) error {
	b, err := bindingFor(typeTag)
	if err != nil {
		return err
	}
	return s.db.Delete(b.model(), id).Error
}

// Related reads a named relationship collection of an entity.
func (s *Store) Related(e resource.Entity, relation string) ([]resource.Entity, error) {
	b, err := bindingFor(e.Type)
	if err != nil {
		return nil, err
	}
	link, ok := b.assocs[relation]
	if !ok {
		return nil, errors.New("store: " + e.Type + " has no relation " + relation)
	}
	tb, err := bindingFor(link.target)
	if err != nil {
		return nil, err
	}

	owner := b.byID(e.ID)
	slice := tb.slice()
	if err := s.db.Model(owner).Association(link.field).Find(slice); err != nil {
		return nil, err
	}

	return tb.entities(link.target, slice), nil
}

// AddRelated links other into a relationship collection. Linking a row that
// is already a member is a no-op.
func (s *Store) AddRelated(e resource.Entity, relation string, other resource.Entity) error {
	b, err := bindingFor(e.Type)
	if err != nil {
		return err
	}
	link, ok := b.assocs[relation]
	if !ok {
		return errors.New("store: " + e.Type + " has no relation " + relation)
	}
	tb, err := bindingFor(other.Type)
	if err != nil {
		return err
	}

	owner := b.byID(e.ID)
	existing := tb.slice()
	if err := s.db.Model(owner).Association(link.field).Find(existing, "id = ?", other.ID); err != nil {
		return err
	}
	if len(tb.collect(existing)) > 0 {
		return nil
	}

	return s.db.Model(owner).Association(link.field).Append(tb.byID(other.ID))
}

// Transaction runs fn against a store bound to one database transaction.
func (s *Store) Transaction(fn func(resource.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func bindingFor(typeTag string) (*binding, error) {
	b, ok := bindings[typeTag]
	if !ok {
		return nil, errors.New("store: unknown entity type " + typeTag)
	}
	return b, nil
}
