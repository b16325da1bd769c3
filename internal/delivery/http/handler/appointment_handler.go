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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		var refErr *usecase.ReferenceError
		if errors.As(err, &refErr) {
			respondReferenceError(w, refErr)
			return
		}
		response.InternalServerError(w, "Failed to create appointment")
		return
	}

	response.Created(w, appointment)
}

func (h *AppointmentHandler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "appointment")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.GetAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAllAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointments")
		return
	}

	response.OK(w, appointments)
}

func (h *AppointmentHandler) ReplaceAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "appointment")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.CreateAppointmentRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, converter.AppointmentReplaceRequest(&req))
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "appointment")
	if !ok || !h.exists(w, r, id) {
		return
	}

	var req dto.UpdateAppointmentRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	h.update(w, r, id, &req)
}

// exists writes a 404 and returns false when the appointment is missing.
func (h *AppointmentHandler) exists(w http.ResponseWriter, r *http.Request, id int64) bool {
	if _, err := h.appointmentUsecase.GetAppointment(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return false
		}
		response.InternalServerError(w, "Failed to update appointment")
		return false
	}
	return true
}

func (h *AppointmentHandler) update(w http.ResponseWriter, r *http.Request, id int64, req *dto.UpdateAppointmentRequest) {
	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), id, req)
	if err != nil {
		var refErr *usecase.ReferenceError
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.As(err, &refErr):
			respondReferenceError(w, refErr)
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.OK(w, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "appointment")
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to delete appointment")
		return
	}

	response.NoContent(w)
}
