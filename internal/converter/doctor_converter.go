package converter

import (
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:         doctor.ID,
		HospitalID: doctor.HospitalID,
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Phone:      doctor.Phone,
		Email:      doctor.Email,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		HospitalID: req.HospitalID,
		Name:       req.Name,
		Specialty:  req.Specialty,
		Phone:      req.Phone,
		Email:      req.Email,
	}
}

func DoctorReplaceRequest(req *dto.CreateDoctorRequest) *dto.UpdateDoctorRequest {
	return &dto.UpdateDoctorRequest{
		HospitalID: &req.HospitalID,
		Name:       &req.Name,
		Specialty:  &req.Specialty,
		Phone:      &req.Phone,
		Email:      &req.Email,
	}
}
