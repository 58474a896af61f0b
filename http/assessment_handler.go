package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/service"
)

type AssessmentHandler struct {
	service *service.AssessmentService
	logger  *slog.Logger
}

func NewAssessmentHandler(service *service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	return &AssessmentHandler{service: service, logger: logger}
}

func (h *AssessmentHandler) AssessIncome(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.AssessIncome)(w, r)
}

func (h *AssessmentHandler) AssessDebt(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.AssessDebt)(w, r)
}
