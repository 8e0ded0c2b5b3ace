package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frahmantamala/payroll-management/internal/bank"
	"github.com/frahmantamala/payroll-management/internal/division"
	"github.com/frahmantamala/payroll-management/internal/employee"
	"github.com/frahmantamala/payroll-management/internal/job"
	"github.com/frahmantamala/payroll-management/internal/organization"
	"github.com/frahmantamala/payroll-management/internal/payroll"
	"github.com/frahmantamala/payroll-management/internal/transport/middleware"
	"github.com/frahmantamala/payroll-management/internal/transport/swagger"
)

// Handlers groups every entity handler the router mounts.
type Handlers struct {
	Organization *organization.Handler
	Payroll      *payroll.Handler
	Division     *division.Handler
	Job          *job.Handler
	Bank         *bank.Handler
	Employee     *employee.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics)

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())
	router.Handle("/metrics", promhttp.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/organizations", func(or chi.Router) {
			or.Post("/", handlers.Organization.CreateOrganization)
			or.Get("/", handlers.Organization.ListOrganizations)

			or.Route("/{organizationID}", func(o chi.Router) {
				o.Get("/", handlers.Organization.GetOrganization)
				o.Put("/", handlers.Organization.UpdateOrganization)
				o.Delete("/", handlers.Organization.DeleteOrganization)

				o.Route("/banks", func(br chi.Router) {
					br.Post("/", handlers.Bank.CreateBank)
					br.Get("/", handlers.Bank.ListBanks)
					br.Get("/{bankID}", handlers.Bank.GetBank)
					br.Put("/{bankID}", handlers.Bank.UpdateBank)
					br.Delete("/{bankID}", handlers.Bank.DeleteBank)
				})

				o.Route("/payrolls", func(pr chi.Router) {
					pr.Post("/", handlers.Payroll.CreatePayroll)
					pr.Get("/", handlers.Payroll.ListPayrolls)

					pr.Route("/{payrollID}", func(p chi.Router) {
						p.Get("/", handlers.Payroll.GetPayroll)
						p.Put("/", handlers.Payroll.UpdatePayroll)
						p.Delete("/", handlers.Payroll.DeletePayroll)

						p.Route("/jobs", func(jr chi.Router) {
							jr.Post("/", handlers.Job.CreateJob)
							jr.Get("/", handlers.Job.ListJobs)
							jr.Get("/{jobID}", handlers.Job.GetJob)
							jr.Put("/{jobID}", handlers.Job.UpdateJob)
							jr.Delete("/{jobID}", handlers.Job.DeleteJob)
						})

						p.Route("/divisions", func(dr chi.Router) {
							dr.Post("/", handlers.Division.CreateDivision)
							dr.Get("/", handlers.Division.ListDivisions)

							dr.Route("/{divisionID}", func(d chi.Router) {
								d.Get("/", handlers.Division.GetDivision)
								d.Put("/", handlers.Division.UpdateDivision)
								d.Delete("/", handlers.Division.DeleteDivision)

								d.Route("/employees", func(er chi.Router) {
									er.Post("/", handlers.Employee.CreateEmployee)
									er.Get("/", handlers.Employee.ListEmployees)
									er.Get("/{employeeID}", handlers.Employee.GetEmployee)
									er.Put("/{employeeID}", handlers.Employee.UpdateEmployee)
									er.Delete("/{employeeID}", handlers.Employee.DeleteEmployee)
								})
							})
						})
					})
				})
			})
		})
	})
}
