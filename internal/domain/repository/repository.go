package repository

import "context"

// Repository is the data-access contract shared by every entity. Each method
// issues a single statement.
type Repository[T any] interface {
	// List returns every row ordered by id.
	List(ctx context.Context) ([]T, error)
	// FindByID returns (nil, nil) when no row has the given id.
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, row *T) error
	// Update returns the number of rows changed; zero means the row is gone.
	Update(ctx context.Context, row *T) (int64, error)
	// Delete returns the number of rows removed. Dependent rows are removed
	// by the database's ON DELETE CASCADE constraints.
	Delete(ctx context.Context, id int64) (int64, error)
}
