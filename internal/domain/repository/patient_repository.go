package repository

import "maareeye-hospital/internal/domain/entity"

type PatientRepository interface {
	Repository[entity.Patient]
}
