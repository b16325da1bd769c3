package handler

import (
	"errors"
	"net/http"

	"maareeye-hospital/internal/converter"
	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/usecase"
	"maareeye-hospital/pkg/response"
	"maareeye-hospital/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) CreateHospital(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create hospital")
		return
	}

	response.Created(w, hospital)
}

func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "hospital")
	if !ok {
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.OK(w, hospital)
}

func (h *HospitalHandler) GetAllHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.GetAllHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get hospitals")
		return
	}

	response.OK(w, hospitals)
}

// ReplaceHospital handles PUT: every writable field must be present.
func (h *HospitalHandler) ReplaceHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "hospital")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.CreateHospitalRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, converter.HospitalReplaceRequest(&req))
}

// UpdateHospital handles PATCH.
func (h *HospitalHandler) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "hospital")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.UpdateHospitalRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, &req)
}

// exists writes a 404 and returns false when the hospital is missing.
func (h *HospitalHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
	if _, err := h.hospitalUsecase.GetHospital(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return false
		}
		response.InternalServerError(w, "Failed to update hospital")
		return false
	}
	return true
}

func (h *HospitalHandler) update(w http.ResponseWriter, r *http.Request, id int64, req *dto.UpdateHospitalRequest) {
	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to update hospital")
		return
	}

	response.OK(w, hospital)
}

func (h *HospitalHandler) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "hospital")
	if !ok {
		return
	}

	if err := h.hospitalUsecase.DeleteHospital(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrHospitalNotFound) {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to delete hospital")
		return
	}

	response.NoContent(w)
}
