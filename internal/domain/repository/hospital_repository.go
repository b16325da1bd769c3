package repository

import (
	"context"

	"maareeye-hospital/internal/domain/entity"
)

type HospitalRepository interface {
	Repository[entity.Hospital]
	Count(ctx context.Context) (int64, error)
}
