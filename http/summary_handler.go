package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/service"
)

type SummaryHandler struct {
	service *service.SummaryService
	logger  *slog.Logger
}

func NewSummaryHandler(service *service.SummaryService, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{service: service, logger: logger}
}

func (h *SummaryHandler) FinancialPosition(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.SummarizeFinancialPosition)(w, r)
}

func (h *SummaryHandler) LoanOptions(w http.ResponseWriter, r *http.Request) {
	calculation(h.logger, h.service.SummarizeLoanAndPropertyOptions)(w, r)
}
