package dto

// Request DTOs

type CreatePatientRequest struct {
	HospitalID int64  `json:"hospital_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=255"`
	Age        *int32 `json:"age" validate:"required"`
	Phone      string `json:"phone" validate:"required,max=20"`
	Email      string `json:"email" validate:"required,max=254"`
	Address    string `json:"address" validate:"required"`
}

type UpdatePatientRequest struct {
	HospitalID *int64  `json:"hospital_id" validate:"omitempty,gt=0"`
	Name       *string `json:"name" validate:"omitempty,min=1,max=255"`
	Age        *int32  `json:"age"`
	Phone      *string `json:"phone" validate:"omitempty,min=1,max=20"`
	Email      *string `json:"email" validate:"omitempty,min=1,max=254"`
	Address    *string `json:"address" validate:"omitempty,min=1"`
}

// Response DTOs

type PatientResponse struct {
	ID         int64  `json:"id"`
	HospitalID int64  `json:"hospital_id"`
	Name       string `json:"name"`
	Age        int32  `json:"age"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
}
