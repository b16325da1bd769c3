package converter

import (
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO.
// Dates are always rendered in UTC.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:         appointment.ID,
		DoctorID:   appointment.DoctorID,
		PatientID:  appointment.PatientID,
		HospitalID: appointment.HospitalID,
		Date:       appointment.Date.UTC(),
		Reason:     appointment.Reason,
		Status:     appointment.Status,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// CreateAppointmentRequestToEntity fills Status with "Scheduled" when the
// request leaves it out.
func CreateAppointmentRequestToEntity(req *dto.CreateAppointmentRequest) *entity.Appointment {
	appointment := &entity.Appointment{
		DoctorID:   req.DoctorID,
		PatientID:  req.PatientID,
		HospitalID: req.HospitalID,
		Reason:     req.Reason,
		Status:     entity.AppointmentStatusScheduled,
	}
	if req.Date != nil {
		appointment.Date = req.Date.UTC()
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	return appointment
}

// AppointmentReplaceRequest keeps the stored status when a PUT payload omits it.
func AppointmentReplaceRequest(req *dto.CreateAppointmentRequest) *dto.UpdateAppointmentRequest {
	return &dto.UpdateAppointmentRequest{
		DoctorID:   &req.DoctorID,
		PatientID:  &req.PatientID,
		HospitalID: &req.HospitalID,
		Date:       req.Date,
		Reason:     &req.Reason,
		Status:     req.Status,
	}
}
