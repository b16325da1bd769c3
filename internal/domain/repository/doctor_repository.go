package repository

import "maareeye-hospital/internal/domain/entity"

type DoctorRepository interface {
	Repository[entity.Doctor]
}
