package converter

import (
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:         patient.ID,
		HospitalID: patient.HospitalID,
		Name:       patient.Name,
		Age:        patient.Age,
		Phone:      patient.Phone,
		Email:      patient.Email,
		Address:    patient.Address,
	}
}

// PatientsToResponses converts a slice of Patient entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// CreatePatientRequestToEntity expects a validated request; Age is required there.
func CreatePatientRequestToEntity(req *dto.CreatePatientRequest) *entity.Patient {
	patient := &entity.Patient{
		HospitalID: req.HospitalID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}
	if req.Age != nil {
		patient.Age = *req.Age
	}
	return patient
}

func PatientReplaceRequest(req *dto.CreatePatientRequest) *dto.UpdatePatientRequest {
	return &dto.UpdatePatientRequest{
		HospitalID: &req.HospitalID,
		Name:       &req.Name,
		Age:        req.Age,
		Phone:      &req.Phone,
		Email:      &req.Email,
		Address:    &req.Address,
	}
}
