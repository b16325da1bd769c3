package repository

import (
	"maareeye-hospital/internal/domain/entity"
	domainRepo "maareeye-hospital/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	crudRepository[entity.Appointment]
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{crudRepository: newCRUDRepository[entity.Appointment](db)}
}
