package usecase

import (
	"context"

	"gorm.io/gorm"
)

type HealthUsecase interface {
	// CheckDatabase runs a trivial query and returns the driver error untouched.
	CheckDatabase(ctx context.Context) error
}

type healthUsecase struct {
	db *gorm.DB
}

func NewHealthUsecase(db *gorm.DB) HealthUsecase {
	return &healthUsecase{db: db}
}

func (u *healthUsecase) CheckDatabase(ctx context.Context) error {
	return u.db.WithContext(ctx).Exec("SELECT 1").Error
}
