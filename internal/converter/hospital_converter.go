package converter

import (
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:       hospital.ID,
		Name:     hospital.Name,
		Location: hospital.Location,
		Phone:    hospital.Phone,
		Email:    hospital.Email,
	}
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}

func CreateHospitalRequestToEntity(req *dto.CreateHospitalRequest) *entity.Hospital {
	return &entity.Hospital{
		Name:     req.Name,
		Location: req.Location,
		Phone:    req.Phone,
		Email:    req.Email,
	}
}

// HospitalReplaceRequest turns a full (PUT) payload into an update that sets every field.
func HospitalReplaceRequest(req *dto.CreateHospitalRequest) *dto.UpdateHospitalRequest {
	return &dto.UpdateHospitalRequest{
		Name:     &req.Name,
		Location: &req.Location,
		Phone:    &req.Phone,
		Email:    &req.Email,
	}
}
