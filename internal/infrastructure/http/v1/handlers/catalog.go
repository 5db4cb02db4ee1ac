package handlers

import (
	"github.com/gin-gonic/gin"

	"salespoint/internal/domain/catalog"
	"salespoint/internal/infrastructure/http/v1/dto"
)

// CatalogHandler serves the product and supplier endpoints.
type CatalogHandler struct {
	*BaseHandler
	service *catalog.Service
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(base *BaseHandler, service *catalog.Service) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, service: service}
}

// ListProducts handles GET /products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, products)
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.CreateProduct(c.Request.Context(), req.ToModel()); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "Product created successfully")
}

// ListSuppliers handles GET /suppliers.
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.service.ListSuppliers(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, suppliers)
}

// CreateSupplier handles POST /suppliers.
// The created supplier is echoed back unwrapped.
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	supplier := req.ToModel()
	if err := h.service.CreateSupplier(c.Request.Context(), supplier); err != nil {
		h.Error(c, err)
		return
	}
	h.Raw(c, supplier)
}
