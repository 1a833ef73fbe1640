package routes

import (
	"net/http"

	"gest35bi/handlers"
	"gest35bi/metrics"
	"gest35bi/middlewares"
	"gest35bi/views"

	"github.com/justinas/alice"
)

type Handlers struct {
	Indicators *handlers.IndicatorHandler
	Pages      *handlers.PageHandler
	Health     *handlers.HealthHandler
}

// Setup registers every route and wraps the mux with Middleware.
func Setup(h Handlers, httpMetrics *metrics.HTTPMetrics) http.Handler {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", h.Pages.Home)
	mux.HandleFunc("GET /dashboard", h.Pages.RedirectDashboard)
	mux.HandleFunc("GET /dashboard/criar", h.Pages.CreateForm)
	mux.HandleFunc("POST /dashboard/criar", h.Pages.CreateIndicator)
	mux.HandleFunc("GET /dashboard/acompanhar", h.Pages.Dashboard)
	mux.HandleFunc("POST /dashboard/indicadores/{id}/desempenho", h.Pages.SetMonthlyValue)
	mux.HandleFunc("POST /dashboard/indicadores/{id}/excluir", h.Pages.DeleteIndicator)
	mux.Handle("GET /public/", http.StripPrefix("/public/", http.FileServerFS(views.Public())))

	// Indicator API
	mux.HandleFunc("GET /indicadores", h.Indicators.ListIndicators)
	mux.HandleFunc("POST /indicadores", h.Indicators.CreateIndicator)
	mux.HandleFunc("GET /indicadores/resumo", h.Indicators.CategorySummary)
	mux.HandleFunc("GET /indicadores/{id}", h.Indicators.GetIndicator)
	mux.HandleFunc("PUT /indicadores/{id}", h.Indicators.UpdateIndicator)
	mux.HandleFunc("DELETE /indicadores/{id}", h.Indicators.DeleteIndicator)
	mux.HandleFunc("PATCH /indicadores/{id}/desempenho", h.Indicators.SetMonthlyValue)

	// Operational
	mux.HandleFunc("GET /healthcheck", h.Health.Check)
	mux.Handle("GET /metrics", httpMetrics.Handler())

	return Middleware(httpMetrics).Then(mux)
}

// Middleware is the chain shared by every route. Recovery sits inside request
// logging and metrics so a recovered panic is still logged with its request
// id and counted with its final status. Metrics reads the matched pattern
// from the request, so nothing between it and the mux may replace it.
func Middleware(httpMetrics *metrics.HTTPMetrics) alice.Chain {
	return alice.New(
		middlewares.RequestLogging(),
		httpMetrics.Middleware,
		middlewares.Recovery(),
		middlewares.CORS(),
	)
}
