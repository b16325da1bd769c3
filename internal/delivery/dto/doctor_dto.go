package dto

// Request DTOs

type CreateDoctorRequest struct {
	HospitalID int64  `json:"hospital_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=255"`
	Specialty  string `json:"specialty" validate:"required,max=255"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Email      string `json:"email" validate:"required,max=254"`
}

type UpdateDoctorRequest struct {
	HospitalID *int64  `json:"hospital_id" validate:"omitempty,gt=0"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Specialty  *string `json:"specialty" validate:"omitempty,min=1,max=255"`
	Phone      *string `json:"phone" validate:"omitempty,min=1,max=20"`
	Email      *string `json:"email" validate:"omitempty,min=1,max=254"`
}

// Response DTOs

type DoctorResponse struct {
	ID         int64  `json:"id"`
	HospitalID int64  `json:"hospital_id"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}
