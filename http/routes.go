package http

import (
	"log/slog"
	"net/http"

	"mortgage-affordability/observability"
	"mortgage-affordability/service"
)

// Services groups everything the router dispatches to.
type Services struct {
	Affordability *service.AffordabilityService
	StampDuty     *service.StampDutyService
	Assessment    *service.AssessmentService
	Summary       *service.SummaryService
	Scenario      *service.ScenarioService
}

// NewServices builds every service over the same dependencies.
func NewServices(deps service.Dependencies) Services {
	return Services{
		Affordability: service.NewAffordabilityService(deps),
		StampDuty:     service.NewStampDutyService(deps),
		Assessment:    service.NewAssessmentService(deps),
		Summary:       service.NewSummaryService(deps),
		Scenario:      service.NewScenarioService(deps),
	}
}

// NewRouter registers every endpoint. Calculation routes sit behind the rate
// limiter; all routes are logged and timed.
func NewRouter(svc Services, limiter *RateLimiter, logger *slog.Logger, metrics *observability.Metrics) http.Handler {
	affordability := NewAffordabilityHandler(svc.Affordability, logger)
	stampDuty := NewStampDutyHandler(svc.StampDuty, logger)
	assessment := NewAssessmentHandler(svc.Assessment, logger)
	summary := NewSummaryHandler(svc.Summary, logger)
	scenario := NewScenarioHandler(svc.Scenario, logger)

	routes := []struct {
		path    string
		handler http.HandlerFunc
	}{
		{"/affordability/calculate", affordability.CalculateAffordability},
		{"/affordability/assess-loan", affordability.AssessLoan},
		{"/stamp-duty/hk", stampDuty.HKStampDuty},
		{"/stamp-duty/hk/buyer", stampDuty.HKBuyerStampDuty},
		{"/stamp-duty/sg/buyer", stampDuty.SGBuyerStampDuty},
		{"/stamp-duty/sg/additional", stampDuty.AdditionalBuyerStampDuty},
		{"/assessment/income", assessment.AssessIncome},
		{"/assessment/debt", assessment.AssessDebt},
		{"/summary/financial-position", summary.FinancialPosition},
		{"/summary/loan-options", summary.LoanOptions},
		{"/scenario/sg", scenario.SGReport},
		{"/scenario/hk", scenario.HKReport},
	}

	mux := http.NewServeMux()
	for _, rt := range routes {
		mux.Handle(rt.path, MetricsMiddleware(metrics, rt.path, RateLimitMiddleware(limiter, rt.handler)))
	}
	mux.Handle("/healthz", MetricsMiddleware(metrics, "/healthz", http.HandlerFunc(healthz)))
	mux.Handle("/metrics", metrics.Handler())

	return LoggingMiddleware(logger, mux)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
