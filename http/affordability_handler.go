package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/service"
)

type AffordabilityHandler struct {
	service *service.AffordabilityService
	logger  *slog.Logger
}

func NewAffordabilityHandler(service *service.AffordabilityService, logger *slog.Logger) *AffordabilityHandler {
	return &AffordabilityHandler{service: service, logger: logger}
}

func (h *AffordabilityHandler) CalculateAffordability(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.CalculateAffordability)(w, r)
}

func (h *AffordabilityHandler) AssessLoan(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.AssessLoan)(w, r)
}
