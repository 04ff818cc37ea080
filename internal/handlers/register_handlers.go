package handlers

import (
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServicesProvider,
) {
	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServicesProvider,
) {
	v1 := r.Group("/api/v1")

	// Global reference data
	registerAccountTypeRoutes(v1, services.ChartSvc)

	// Project collection routes
	registerProjectRoutes(v1, services.ProjectSvc)

	// Project-scoped routes
	project := v1.Group("/projects/:projectID")
	registerChartRoutes(project, services.ChartSvc)
	registerVoucherRoutes(project, services.VoucherSvc)
	registerBudgetRoutes(project, services.BudgetSvc, services.ChartSvc)
	registerBookRoutes(project, services.ReportingSvc, services.BalanceSvc)
	registerReportRoutes(project, services.ReportingSvc)
}
