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

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	patient, err := h.patientUsecase.CreatePatient(r.Context(), &req)
	if err != nil {
		var refErr *usecase.ReferenceError
		if errors.As(err, &refErr) {
			respondReferenceError(w, refErr)
			return
		}
		response.InternalServerError(w, "Failed to create patient")
		return
	}

	response.Created(w, patient)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "patient")
	if !ok {
		return
	}

	patient, err := h.patientUsecase.GetPatient(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.OK(w, patients)
}

func (h *PatientHandler) ReplacePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "patient")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.CreatePatientRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, converter.PatientReplaceRequest(&req))
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "patient")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.UpdatePatientRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, &req)
}

// exists writes a 404 and returns false when the patient is missing.
func (h *PatientHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
	if _, err := h.patientUsecase.GetPatient(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return false
		}
		response.InternalServerError(w, "Failed to update patient")
		return false
	}
	return true
}

func (h *PatientHandler) update(w http.ResponseWriter, r *http.Request, id int64, req *dto.UpdatePatientRequest) {
	patient, err := h.patientUsecase.UpdatePatient(r.Context(), id, req)
	if err != nil {
		var refErr *usecase.ReferenceError
		switch {
		case errors.Is(err, usecase.ErrPatientNotFound):
			response.NotFound(w, "Patient not found")
		case errors.As(err, &refErr):
			respondReferenceError(w, refErr)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.OK(w, patient)
}

func (h *PatientHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "patient")
	if !ok {
		return
	}

	if err := h.patientUsecase.DeletePatient(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to delete patient")
		return
	}

	response.NoContent(w)
}
