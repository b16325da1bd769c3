package handler

import (
	"net/http"

	"maareeye-hospital/internal/delivery/dto"
	"maareeye-hospital/internal/usecase"
	"maareeye-hospital/pkg/response"

	"github.com/sirupsen/logrus"
)

const runningMessage = "Maareeye Hospital System is running"

type HealthHandler struct {
	log           *logrus.Logger
	healthUsecase usecase.HealthUsecase
}

func NewHealthHandler(log *logrus.Logger, healthUsecase usecase.HealthUsecase) *HealthHandler {
	return &HealthHandler{
		log:           log,
		healthUsecase: healthUsecase,
	}
}

// Health reports liveness only; it never touches the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.HealthResponse{
		Status:  response.StatusOK,
		Message: runningMessage,
	})
}

// DatabaseCheck runs a trivial query. On failure the driver message is
// returned verbatim.
func (h *HealthHandler) DatabaseCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.healthUsecase.CheckDatabase(r.Context()); err != nil {
		h.log.Warnf("Database check failed: %+v", err)
		response.JSON(w, http.StatusInternalServerError, dto.DatabaseCheckResponse{
			Status: response.StatusError,
			Error:  err.Error(),
		})
		return
	}

	response.OK(w, dto.DatabaseCheckResponse{
		Status:   response.StatusOK,
		Database: "Connected",
	})
}
