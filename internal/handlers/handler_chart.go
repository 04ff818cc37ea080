package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fundbooks/fundbooks/internal/core/domain"
	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/dto"
	"github.com/fundbooks/fundbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// chartHandler handles HTTP requests for the chart-of-accounts hierarchy.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

// newChartHandler creates a new chartHandler.
func newChartHandler(chartService portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{
		chartService: chartService,
	}
}

// accountTypeNames maps account type codes to their display names, for
// populated views. A lookup into a nil map yields "", so callers can pass
// the map through unconditionally.
func (h *chartHandler) accountTypeNames(ctx context.Context) (map[domain.AccountTypeCode]string, error) {
	types, err := h.chartService.ListAccountTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[domain.AccountTypeCode]string, len(types))
	for _, t := range types {
		names[t.Code] = t.Name
	}
	return names, nil
}

// groupNames maps a project's ledger group IDs to group names.
func (h *chartHandler) groupNames(ctx context.Context, projectID string) (map[string]string, error) {
	groups, err := h.chartService.ListLedgerGroups(ctx, projectID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(groups))
	for _, g := range groups {
		names[g.GroupID] = g.GroupName
	}
	return names, nil
}

// ledgerNames maps a project's general ledger IDs to ledger names.
func (h *chartHandler) ledgerNames(ctx context.Context, projectID string) (map[string]string, error) {
	ledgers, err := h.chartService.ListGeneralLedgers(ctx, projectID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(ledgers))
	for _, l := range ledgers {
		names[l.LedgerID] = l.LedgerName
	}
	return names, nil
}

func (h *chartHandler) listAccountTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.chartService.ListAccountTypes(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "list account types")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accountTypes": dto.ToAccountTypeResponses(types)})
}

func (h *chartHandler) createLedgerGroup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateLedgerGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createLedgerGroup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	group, err := h.chartService.CreateLedgerGroup(c.Request.Context(), projectID, req)
	if err != nil {
		handleServiceError(c, logger, err, "create ledger group")
		return
	}

	logger.Info("Ledger group created successfully", slog.String("group_id", group.GroupID))
	c.JSON(http.StatusCreated, dto.ToLedgerGroupResponse(group, ""))
}

func (h *chartHandler) listLedgerGroups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	groups, err := h.chartService.ListLedgerGroups(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, logger, err, "list ledger groups")
		return
	}

	var typeNames map[domain.AccountTypeCode]string
	if wantsPopulatedView(c) {
		typeNames, err = h.accountTypeNames(c.Request.Context())
		if err != nil {
			handleServiceError(c, logger, err, "list ledger groups")
			return
		}
	}

	responses := make([]dto.LedgerGroupResponse, len(groups))
	for i := range groups {
		responses[i] = dto.ToLedgerGroupResponse(&groups[i], typeNames[groups[i].AccountTypeCode])
	}
	c.JSON(http.StatusOK, gin.H{"ledgerGroups": responses})
}

func (h *chartHandler) createGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateGeneralLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createGeneralLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	ledger, err := h.chartService.CreateGeneralLedger(c.Request.Context(), projectID, req)
	if err != nil {
		handleServiceError(c, logger, err, "create general ledger")
		return
	}

	logger.Info("General ledger created successfully", slog.String("ledger_id", ledger.LedgerID))
	c.JSON(http.StatusCreated, dto.ToGeneralLedgerResponse(ledger, ""))
}

func (h *chartHandler) getGeneralLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	ledgerID := c.Param("ledgerID")

	ledger, err := h.chartService.GetGeneralLedger(c.Request.Context(), projectID, ledgerID)
	if err != nil {
		handleServiceError(c, logger, err, "retrieve general ledger")
		return
	}

	var groupNames map[string]string
	if wantsPopulatedView(c) {
		groupNames, err = h.groupNames(c.Request.Context(), projectID)
		if err != nil {
			handleServiceError(c, logger, err, "retrieve general ledger")
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(ledger, groupNames[ledger.GroupID]))
}

func (h *chartHandler) listGeneralLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	ledgers, err := h.chartService.ListGeneralLedgers(c.Request.Context(), projectID)
	if err != nil {
		handleServiceError(c, logger, err, "list general ledgers")
		return
	}

	var groupNames map[string]string
	if wantsPopulatedView(c) {
		groupNames, err = h.groupNames(c.Request.Context(), projectID)
		if err != nil {
			handleServiceError(c, logger, err, "list general ledgers")
			return
		}
	}

	responses := make([]dto.GeneralLedgerResponse, len(ledgers))
	for i := range ledgers {
		responses[i] = dto.ToGeneralLedgerResponse(&ledgers[i], groupNames[ledgers[i].GroupID])
	}
	c.JSON(http.StatusOK, gin.H{"generalLedgers": responses})
}

func (h *chartHandler) createSubLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateSubLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createSubLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	sub, err := h.chartService.CreateSubLedger(c.Request.Context(), projectID, req)
	if err != nil {
		handleServiceError(c, logger, err, "create sub-ledger")
		return
	}

	logger.Info("Sub-ledger created successfully", slog.String("sub_ledger_id", sub.SubLedgerID))
	c.JSON(http.StatusCreated, dto.ToSubLedgerResponse(sub, ""))
}

func (h *chartHandler) getSubLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	subLedgerID := c.Param("subLedgerID")

	sub, err := h.chartService.GetSubLedger(c.Request.Context(), projectID, subLedgerID)
	if err != nil {
		handleServiceError(c, logger, err, "retrieve sub-ledger")
		return
	}

	var ledgerNames map[string]string
	if wantsPopulatedView(c) {
		ledgerNames, err = h.ledgerNames(c.Request.Context(), projectID)
		if err != nil {
			handleServiceError(c, logger, err, "retrieve sub-ledger")
			return
		}
	}

	c.JSON(http.StatusOK, dto.ToSubLedgerResponse(sub, ledgerNames[sub.LedgerID]))
}

func (h *chartHandler) listSubLedgers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	ledgerID := c.Query("generalLedger")

	subs, err := h.chartService.ListSubLedgers(c.Request.Context(), projectID, ledgerID)
	if err != nil {
		handleServiceError(c, logger, err, "list sub-ledgers")
		return
	}

	var ledgerNames map[string]string
	if wantsPopulatedView(c) {
		ledgerNames, err = h.ledgerNames(c.Request.Context(), projectID)
		if err != nil {
			handleServiceError(c, logger, err, "list sub-ledgers")
			return
		}
	}

	responses := make([]dto.SubLedgerResponse, len(subs))
	for i := range subs {
		responses[i] = dto.ToSubLedgerResponse(&subs[i], ledgerNames[subs[i].LedgerID])
	}
	c.JSON(http.StatusOK, gin.H{"subLedgers": responses})
}

// registerAccountTypeRoutes registers the global account type reference route
func registerAccountTypeRoutes(group *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	handler := newChartHandler(chartService)
	group.GET("/account-types", handler.listAccountTypes)
}

// registerChartRoutes registers chart-of-accounts routes under a project
func registerChartRoutes(project *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	handler := newChartHandler(chartService)

	groups := project.Group("/ledger-groups")
	{
		groups.POST("", handler.createLedgerGroup)
		groups.GET("", handler.listLedgerGroups)
	}

	ledgers := project.Group("/general-ledgers")
	{
		ledgers.POST("", handler.createGeneralLedger)
		ledgers.GET("", handler.listGeneralLedgers)
		ledgers.GET("/:ledgerID", handler.getGeneralLedger)
	}

	subLedgers := project.Group("/sub-ledgers")
	{
		subLedgers.POST("", handler.createSubLedger)
		subLedgers.GET("", handler.listSubLedgers)
		subLedgers.GET("/:subLedgerID", handler.getSubLedger)
	}
}
