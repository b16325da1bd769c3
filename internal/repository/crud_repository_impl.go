package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository implements domain repository.Repository[T] for any gorm model
// whose primary key column is "id".
type crudRepository[T any] struct {
	db *gorm.DB
}

func newCRUDRepository[T any](db *gorm.DB) crudRepository[T] {
	return crudRepository[T]{db: db}
}

func (r *crudRepository[T]) List(ctx context.Context) ([]T, error) {
	rows := []T{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// Create and Update write the row only, never its relationship fields.
func (r *crudRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

// Update rewrites every column of an existing row and never inserts; a row
// deleted in the meantime yields zero rows affected.
func (r *crudRepository[T]) Update(ctx context.Context, row *T) (int64, error) {
	result := r.db.WithContext(ctx).Model(row).Omit(clause.Associations).Select("*").Updates(row)
	return result.RowsAffected, result.Error
}

func (r *crudRepository[T]) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}
