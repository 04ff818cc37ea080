package handlers

import (
	"net/http"

	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportsHandler handles HTTP requests for financial reports.
type reportsHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportsHandler creates a new reportsHandler.
func newReportsHandler(reportingService portssvc.ReportingSvcFacade) *reportsHandler {
	return &reportsHandler{
		reportingService: reportingService,
	}
}

func (h *reportsHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	// The trial balance takes the same from/to pair as the other period
	// reports but folds everything through the end of the range, so only
	// to enters the figures.
	_, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), projectID, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate trial balance")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportsHandler) incomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), projectID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportsHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	asOf, ok := parseDateQuery(c, "asOfDate")
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), projectID, asOf)
	if err != nil {
		handleServiceError(c, logger, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportsHandler) fundAccountability(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.FundAccountability(c.Request.Context(), projectID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate fund accountability report")
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *reportsHandler) budgetVsExpenditure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BudgetVsExpenditure(c.Request.Context(), projectID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate budget vs expenditure report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// registerReportRoutes registers report routes under a project
func registerReportRoutes(project *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	handler := newReportsHandler(reportingService)

	reports := project.Group("/reports")
	{
		reports.GET("/trial-balance", handler.trialBalance)
		reports.GET("/income-statement", handler.incomeStatement)
		reports.GET("/balance-sheet", handler.balanceSheet)
		reports.GET("/fund-accountability", handler.fundAccountability)
		reports.GET("/budget-vs-expenditure", handler.budgetVsExpenditure)
	}
}
