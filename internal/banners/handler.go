package banners

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/i18n"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Public: active banners for one storefront position.
func (h *Handler) ListPublic(c *gin.Context) {
	active := true
	c.JSON(http.StatusOK, gin.H{
		"items": h.svc.List(c.Request.Context(), c.Query("position"), &active),
	})
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.svc.List(c.Request.Context(), c.Query("position"), nil),
	})
}

type CreateBannerReq struct {
	Title           i18n.Text `json:"title" binding:"required"`
	Description     i18n.Text `json:"description"`
	Image           string    `json:"image"`
	TargetURL       string    `json:"targetUrl"`
	IsActive        *bool     `json:"isActive"`
	Position        string    `json:"position" binding:"required"`
	DisplayOrder    int       `json:"displayOrder"`
	DiscountPercent *float64  `json:"discountPercent"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateBannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	created, err := h.svc.Create(c.Request.Context(), CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		Image:           req.Image,
		TargetURL:       req.TargetURL,
		IsActive:        active,
		Position:        req.Position,
		DisplayOrder:    req.DisplayOrder,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create banner"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UpdateBannerReq struct {
	Title           *i18n.Text `json:"title"`
	Description     *i18n.Text `json:"description"`
	Image           *string    `json:"image"`
	TargetURL       *string    `json:"targetUrl"`
	IsActive        *bool      `json:"isActive"`
	Position        *string    `json:"position"`
	DisplayOrder    *int       `json:"displayOrder"`
	DiscountPercent *float64   `json:"discountPercent"`
	ClearDiscount   bool       `json:"clearDiscount"`
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req UpdateBannerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	in := UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		TargetURL:    req.TargetURL,
		IsActive:     req.IsActive,
		Position:     req.Position,
		DisplayOrder: req.DisplayOrder,
	}
	if req.DiscountPercent != nil {
		in.DiscountPercent = &req.DiscountPercent
	} else if req.ClearDiscount {
		var none *float64
		in.DiscountPercent = &none
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update banner"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type MoveReq struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

func (h *Handler) AdminMove(c *gin.Context) {
	var req MoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.svc.Move(c.Request.Context(), c.Param("id"), req.Direction == "up"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to move banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
