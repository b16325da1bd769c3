package dto

// Request DTOs

type CreateHospitalRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,max=254"`
}

// UpdateHospitalRequest carries only the fields to change; nil means keep.
type UpdateHospitalRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,min=1,max=20"`
	Email    *string `json:"email" validate:"omitempty,min=1,max=254"`
}

// Response DTOs

type HospitalResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}
