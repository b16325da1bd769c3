package repository

import (
	"context"

	"maareeye-hospital/internal/domain/entity"
	domainRepo "maareeye-hospital/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct {
	crudRepository[entity.Hospital]
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{crudRepository: newCRUDRepository[entity.Hospital](db)}
}

func (r *hospitalRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.Hospital{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
