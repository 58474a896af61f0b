package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *slog.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *slog.Logger) *ScenarioHandler {
	return &ScenarioHandler{service: service, logger: logger}
}

func (h *ScenarioHandler) SGReport(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.SGReport)(w, r)
}

func (h *ScenarioHandler) HKReport(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.HKReport)(w, r)
}
