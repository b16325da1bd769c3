package repository

import (
	"maareeye-hospital/internal/domain/entity"
	domainRepo "maareeye-hospital/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	crudRepository[entity.Patient]
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{crudRepository: newCRUDRepository[entity.Patient](db)}
}
