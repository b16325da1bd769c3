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

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		var refErr *usecase.ReferenceError
		if errors.As(err, &refErr) {
			respondReferenceError(w, refErr)
			return
		}
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.Created(w, doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "doctor")
	if !ok {
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.OK(w, doctors)
}

func (h *DoctorHandler) ReplaceDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "doctor")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.CreateDoctorRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, converter.DoctorReplaceRequest(&req))
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "doctor")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.UpdateDoctorRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, &req)
}

// exists writes a 404 and returns false when the doctor is missing.
func (h *DoctorHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
	if _, err := h.doctorUsecase.GetDoctor(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return false
		}
		response.InternalServerError(w, "Failed to update doctor")
		return false
	}
	return true
}

func (h *DoctorHandler) update(w http.ResponseWriter, r *http.Request, id int64, req *dto.UpdateDoctorRequest) {
	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), id, req)
	if err != nil {
		var refErr *usecase.ReferenceError
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			response.NotFound(w, "Doctor not found")
		case errors.As(err, &refErr):
			respondReferenceError(w, refErr)
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.OK(w, doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "doctor")
	if !ok {
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.NoContent(w)
}
