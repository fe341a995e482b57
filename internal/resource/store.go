package resource

// Entity is the neutral record the core works with: a row of some entity type
// with its attributes keyed by domain name. Attribute values are the coerced
// Go forms (string, bool, time.Time, *time.Time, uint, *uint, nil).
type Entity struct {
	ID    uint
	Type  string
	Attrs map[string]any
}

// Store is the persistence contract the core consumes. Implementations must
// return ErrNotFound (possibly wrapped) from Get when no row exists, must make
// Delete succeed on absent ids, and must make AddRelated a no-op when the link
// already exists.
type Store interface {
	// Get fetches one row by id.
	Get(typeTag string, id uint) (Entity, error)
	// SelectAll fetches every row of a type.
	SelectAll(typeTag string) ([]Entity, error)
	// Create inserts a row from coerced attributes; the store assigns the id.
	Create(typeTag string, attrs map[string]any) (Entity, error)
	// Update applies mutated attributes to an existing row.
	Update(e Entity, attrs map[string]any) (Entity, error)
	// Delete removes a row. Deleting an absent id is not an error.
	Delete(typeTag string, id uint) error
	// Related reads a named relationship collection of an entity.
	Related(e Entity, relation string) ([]Entity, error)
	// AddRelated links other into a relationship collection, idempotently.
	AddRelated(e Entity, relation string, other Entity) error
	// Transaction runs fn against a store whose writes commit or roll back
	// as one unit.
	Transaction(fn func(Store) error) error
}
