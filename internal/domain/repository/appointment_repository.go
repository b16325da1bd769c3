package repository

import "maareeye-hospital/internal/domain/entity"

type AppointmentRepository interface {
	Repository[entity.Appointment]
}
