package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/service"
)

type StampDutyHandler struct {
	service *service.StampDutyService
	logger  *slog.Logger
}

func NewStampDutyHandler(service *service.StampDutyService, logger *slog.Logger) *StampDutyHandler {
	return &StampDutyHandler{service: service, logger: logger}
}

func (h *StampDutyHandler) HKStampDuty(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.HKStampDuty)(w, r)
}

func (h *StampDutyHandler) HKBuyerStampDuty(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.HKBuyerStampDuty)(w, r)
}

func (h *StampDutyHandler) SGBuyerStampDuty(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.SGBuyerStampDuty)(w, r)
}

func (h *StampDutyHandler) AdditionalBuyerStampDuty(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.AdditionalBuyerStampDuty)(w, r)
}
