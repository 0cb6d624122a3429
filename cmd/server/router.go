package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/biztime-api/internal/api"
	apimiddleware "github.com/phrazzld/biztime-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the router with the middleware stack and all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	metrics := apimiddleware.NewMetrics(app.registry)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.NewTraceMiddleware(app.logger))
	r.Use(metrics.Handler)
	r.Use(chimiddleware.Recoverer)

	companyHandler := api.NewCompanyHandler(app.companyStore)
	industryHandler := api.NewIndustryHandler(app.industryStore)
	invoiceHandler := api.NewInvoiceHandler(app.invoiceStore)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", api.Handle(companyHandler.ListCompanies))
		r.Post("/", api.Handle(companyHandler.CreateCompany))
		r.Get("/{code}", api.Handle(companyHandler.GetCompany))
		r.Put("/{code}", api.Handle(companyHandler.UpdateCompany))
		r.Delete("/{code}", api.Handle(companyHandler.DeleteCompany))
	})

	r.Route("/industries", func(r chi.Router) {
		r.Get("/", api.Handle(industryHandler.ListIndustries))
		r.Post("/", api.Handle(industryHandler.CreateIndustry))
		r.Put("/{code}", api.Handle(industryHandler.AssignIndustry))
	})

	r.Route("/invoices", func(r chi.Router) {
		r.Get("/", api.Handle(invoiceHandler.ListInvoices))
		r.Post("/", api.Handle(invoiceHandler.CreateInvoice))
		r.Get("/{id}", api.Handle(invoiceHandler.GetInvoice))
		r.Put("/{id}", api.Handle(invoiceHandler.UpdateInvoice))
		r.Delete("/{id}", api.Handle(invoiceHandler.DeleteInvoice))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
