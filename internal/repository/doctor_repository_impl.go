package repository

import (
	"maareeye-hospital/internal/domain/entity"
	domainRepo "maareeye-hospital/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	crudRepository[entity.Doctor]
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{crudRepository: newCRUDRepository[entity.Doctor](db)}
}
