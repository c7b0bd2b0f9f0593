package products

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Public: storefront listing with optional category/onSale/new/limit.
func (h *Handler) ListPublic(c *gin.Context) {
	f := Filters{Category: c.Query("category")}
	if v := c.Query("onSale"); v != "" {
		b := v == "true"
		f.OnSale = &b
	}
	if v := c.Query("new"); v != "" {
		b := v == "true"
		f.New = &b
	}
	if v := c.Query("limit"); v != "" {
		f.Limit, _ = strconv.Atoi(v)
	}
	c.JSON(http.StatusOK, gin.H{"items": h.svc.List(c.Request.Context(), f)})
}

func (h *Handler) GetPublic(c *gin.Context) {
	p := h.svc.Get(c.Request.Context(), c.Param("id"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.svc.ListAll(c.Request.Context())})
}

type CreateProductReq struct {
	Title       i18n.Text `json:"title" binding:"required"`
	Price       float64   `json:"price" binding:"required"`
	OldPrice    *float64  `json:"oldPrice"`
	Category    string    `json:"category" binding:"required"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	IsNew       bool      `json:"isNew"`
	IsOnSale    bool      `json:"isOnSale"`
	Description i18n.Text `json:"description"`
	Image       string    `json:"image"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.svc.Create(c.Request.Context(), CreateInput{
		Title:       req.Title,
		Price:       req.Price,
		OldPrice:    req.OldPrice,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      req.Status,
		IsNew:       req.IsNew,
		IsOnSale:    req.IsOnSale,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

type UpdateProductReq struct {
	Title       *i18n.Text `json:"title"`
	Price       *float64   `json:"price"`
	OldPrice    *float64   `json:"oldPrice"`
	ClearSale   bool       `json:"clearSale"`
	Category    *string    `json:"category"`
	Stock       *int       `json:"stock"`
	Status      *string    `json:"status"`
	IsNew       *bool      `json:"isNew"`
	IsOnSale    *bool      `json:"isOnSale"`
	Description *i18n.Text `json:"description"`
	Image       *string    `json:"image"`
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req UpdateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	in := UpdateInput{
		Title:       req.Title,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      req.Status,
		IsNew:       req.IsNew,
		IsOnSale:    req.IsOnSale,
		Description: req.Description,
		Image:       req.Image,
	}
	if req.OldPrice != nil {
		in.OldPrice = &req.OldPrice
	} else if req.ClearSale {
		var none *float64
		in.OldPrice = &none
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type BulkIDsReq struct {
	IDs []string `json:"ids"`
}

func (h *Handler) AdminBulkDelete(c *gin.Context) {
	var req BulkIDsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.BulkDelete(c.Request.Context(), req.IDs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(req.IDs)})
}

type BulkStatusReq struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status" binding:"required"`
}

func (h *Handler) AdminBulkStatus(c *gin.Context) {
	var req BulkStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(req.IDs)})
}

// AdminExport downloads the catalog as a .json attachment.
func (h *Handler) AdminExport(c *gin.Context) {
	rows, err := h.svc.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export products"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.json"`)
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) AdminImport(c *gin.Context) {
	var rows []store.Row
	if err := c.ShouldBindJSON(&rows); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	n, err := h.svc.Import(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to import products", "imported": n})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "imported": n})
}
