package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/dto"
	"github.com/fundbooks/fundbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budget entries. The chart
// service resolves ledger names for populated views.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
	chartService  portssvc.ChartSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(budgetService portssvc.BudgetSvcFacade, chartService portssvc.ChartSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: budgetService,
		chartService:  chartService,
	}
}

func (h *budgetHandler) createBudgetEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateBudgetEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createBudgetEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.budgetService.CreateBudgetEntry(c.Request.Context(), projectID, req)
	if err != nil {
		handleServiceError(c, logger, err, "create budget entry")
		return
	}

	logger.Info("Budget entry created successfully", slog.String("budget_id", entry.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetEntryResponse(entry, ""))
}

func (h *budgetHandler) listBudgetEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	entries, err := h.budgetService.ListBudgetEntries(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, logger, err, "list budget entries")
		return
	}

	var ledgerNames map[string]string
	if wantsPopulatedView(c) {
		ledgers, err := h.chartService.ListGeneralLedgers(c.Request.Context(), projectID)
		if err != nil {
			handleServiceError(c, logger, err, "list budget entries")
			return
		}
		ledgerNames = make(map[string]string, len(ledgers))
		for _, l := range ledgers {
			ledgerNames[l.LedgerID] = l.LedgerName
		}
	}

	responses := make([]dto.BudgetEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToBudgetEntryResponse(&entries[i], ledgerNames[entries[i].LedgerID])
	}
	c.JSON(http.StatusOK, gin.H{"budgetEntries": responses})
}

// registerBudgetRoutes registers budget entry routes under a project
func registerBudgetRoutes(project *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, chartService portssvc.ChartSvcFacade) {
	handler := newBudgetHandler(budgetService, chartService)

	budgets := project.Group("/budget-entries")
	{
		budgets.POST("", handler.createBudgetEntry)
		budgets.GET("", handler.listBudgetEntries)
	}
}
