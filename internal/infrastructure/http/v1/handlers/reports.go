package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"salespoint/internal/core/apperror"
	"salespoint/internal/domain/reports"
	"salespoint/internal/infrastructure/http/v1/dto"
)

// ReportsHandler serves the dashboard and report endpoints.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service) *ReportsHandler {
	return &ReportsHandler{BaseHandler: base, service: service}
}

// DashboardSummary handles GET /dashboard-summary.
func (h *ReportsHandler) DashboardSummary(c *gin.Context) {
	entries, err := h.service.DashboardSummary(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entries)
}

// InventoryReport handles GET /inventory-report.
// The response is a bare JSON array, not the usual data envelope.
func (h *ReportsHandler) InventoryReport(c *gin.Context) {
	rows, err := h.service.InventoryReport(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Raw(c, rows)
}

// LatestPurchasedItems handles GET /latest-purchased-items.
func (h *ReportsHandler) LatestPurchasedItems(c *gin.Context) {
	items, err := h.service.LatestPurchasedItems(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, items)
}

// OrderItemData handles GET /order-item-data.
func (h *ReportsHandler) OrderItemData(c *gin.Context) {
	var query dto.OrderItemQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.Period == "" {
		query.Period = reports.DefaultPeriod
	}

	entries, err := h.service.OrderItemReport(c.Request.Context(), query.Period)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, entries)
}

// TopSuppliers handles GET /top-suppliers.
func (h *ReportsHandler) TopSuppliers(c *gin.Context) {
	suppliers, err := h.service.TopSuppliers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, suppliers)
}

// ProductDefectReports handles GET /product-defect-reports.
// Both range bounds are required; the store is never queried without them.
func (h *ReportsHandler) ProductDefectReports(c *gin.Context) {
	var query dto.DefectReportQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.StartDate == "" || query.EndDate == "" {
		h.Error(c, apperror.NewValidation("startDate and endDate are required"))
		return
	}

	start, err := parseDate(query.StartDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid startDate"))
		return
	}
	end, err := parseDate(query.EndDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid endDate"))
		return
	}

	buckets, err := h.service.DefectReport(c.Request.Context(), start, end)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, buckets)
}

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
