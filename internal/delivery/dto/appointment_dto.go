package dto

import "time"

// Request DTOs

// CreateAppointmentRequest leaves Status optional; it defaults to "Scheduled".
type CreateAppointmentRequest struct {
	DoctorID   int64      `json:"doctor_id" validate:"required,gt=0"`
	PatientID  int64      `json:"patient_id" validate:"required,gt=0"`
	HospitalID int64      `json:"hospital_id" validate:"required,gt=0"`
	Date       *time.Time `json:"date" validate:"required"`
	Reason     string     `json:"reason" validate:"required"`
	Status     *string    `json:"status" validate:"omitempty,min=1,max=50"`
}

type UpdateAppointmentRequest struct {
	DoctorID   *int64     `json:"doctor_id" validate:"omitempty,gt=0"`
	PatientID  *int64     `json:"patient_id" validate:"omitempty,gt=0"`
	HospitalID *int64     `json:"hospital_id" validate:"omitempty,gt=0"`
	Date       *time.Time `json:"date"`
	Reason     *string    `json:"reason" validate:"omitempty,min=1"`
	Status     *string    `json:"status" validate:"omitempty,min=1,max=50"`
}

// Response DTOs

type AppointmentResponse struct {
	ID         int64     `json:"id"`
	DoctorID   int64     `json:"doctor_id"`
	PatientID  int64     `json:"patient_id"`
	HospitalID int64     `json:"hospital_id"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
}
