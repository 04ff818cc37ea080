package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// booksHandler handles HTTP requests for ledger books and balance queries.
type booksHandler struct {
	reportingService portssvc.ReportingSvcFacade
	balanceService   portssvc.BalanceSvcFacade
}

// newBooksHandler creates a new booksHandler.
func newBooksHandler(reportingService portssvc.ReportingSvcFacade, balanceService portssvc.BalanceSvcFacade) *booksHandler {
	return &booksHandler{
		reportingService: reportingService,
		balanceService:   balanceService,
	}
}

func (h *booksHandler) generalLedgerBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	ledgerID := c.Query("ledgerId")
	if ledgerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter ledgerId"})
		return
	}
	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	book, err := h.reportingService.GeneralLedgerBook(c.Request.Context(), projectID, ledgerID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate general ledger book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *booksHandler) subLedgerBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	subLedgerID := c.Query("subLedgerId")
	if subLedgerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter subLedgerId"})
		return
	}
	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	book, err := h.reportingService.SubLedgerBook(c.Request.Context(), projectID, subLedgerID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate sub-ledger book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *booksHandler) cashBankBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	book, err := h.reportingService.CashBankBook(c.Request.Context(), projectID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "generate cash/bank book")
		return
	}
	c.JSON(http.StatusOK, book)
}

func (h *booksHandler) generalLedgerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	ledgerID := c.Query("ledgerId")
	if ledgerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter ledgerId"})
		return
	}
	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}
	rollUp, _ := strconv.ParseBool(c.DefaultQuery("rollUp", "false"))

	balance, err := h.balanceService.ComputeLedgerBalance(c.Request.Context(), projectID, ledgerID, from, to, rollUp)
	if err != nil {
		handleServiceError(c, logger, err, "compute ledger balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *booksHandler) subLedgerBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	subLedgerID := c.Query("subLedgerId")
	if subLedgerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter subLedgerId"})
		return
	}
	from, to, ok := parseDateRangeQuery(c)
	if !ok {
		return
	}

	balance, err := h.balanceService.ComputeSubLedgerBalance(c.Request.Context(), projectID, subLedgerID, from, to)
	if err != nil {
		handleServiceError(c, logger, err, "compute sub-ledger balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// registerBookRoutes registers book and balance routes under a project
func registerBookRoutes(project *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, balanceService portssvc.BalanceSvcFacade) {
	handler := newBooksHandler(reportingService, balanceService)

	books := project.Group("/books")
	{
		books.GET("/general-ledger", handler.generalLedgerBook)
		books.GET("/sub-ledger", handler.subLedgerBook)
		books.GET("/cash-bank", handler.cashBankBook)
	}

	balances := project.Group("/balances")
	{
		balances.GET("/general-ledger", handler.generalLedgerBalance)
		balances.GET("/sub-ledger", handler.subLedgerBalance)
	}
}
