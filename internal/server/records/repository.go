package records

import "context"

// Repository stores documents per collection. Implementations return
// common.ErrorNotFound for a missing id and common.ErrorConflict for an id
// that already exists.
type Repository interface {
	List(ctx context.Context, entity string) ([]Record, error)
	Get(ctx context.Context, entity string, id int64) (Document, error)
	Insert(ctx context.Context, entity string, id int64, doc Document) error
	// InsertNext stores doc under the highest id of the collection plus one.
	InsertNext(ctx context.Context, entity string, doc Document) (int64, error)
	Update(ctx context.Context, entity string, id int64, doc Document) error
	Delete(ctx context.Context, entity string, id int64) error
}
