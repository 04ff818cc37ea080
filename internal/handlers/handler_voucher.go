package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/fundbooks/fundbooks/internal/core/ports/services"
	"github.com/fundbooks/fundbooks/internal/dto"
	"github.com/fundbooks/fundbooks/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to journal vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

// newVoucherHandler creates a new voucherHandler.
func newVoucherHandler(voucherService portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
	}
}

func (h *voucherHandler) postVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	voucher, err := h.voucherService.PostVoucher(c.Request.Context(), projectID, req)
	if err != nil {
		handleServiceError(c, logger, err, "post voucher")
		return
	}

	logger.Info("Voucher posted successfully",
		slog.String("project_id", projectID),
		slog.Int64("voucher_no", voucher.VoucherNo))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	voucherNo, err := strconv.ParseInt(c.Param("voucherNo"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid voucher number"})
		return
	}

	voucher, err := h.voucherService.GetVoucherByNo(c.Request.Context(), projectID, voucherNo)
	if err != nil {
		handleServiceError(c, logger, err, "retrieve voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Error("Failed to bind query for listVouchers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), projectID, params)
	if err != nil {
		handleServiceError(c, logger, err, "list vouchers")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerVoucherRoutes registers voucher routes under a project
func registerVoucherRoutes(project *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	handler := newVoucherHandler(voucherService)

	vouchers := project.Group("/journal-vouchers")
	{
		vouchers.POST("", handler.postVoucher)
		vouchers.GET("", handler.listVouchers)
		vouchers.GET("/:voucherNo", handler.getVoucher)
	}
}
