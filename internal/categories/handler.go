package categories

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

func (h *Handler) ListPublic(c *gin.Context) {
	active := true
	c.JSON(http.StatusOK, gin.H{"items": h.svc.List(c.Request.Context(), &active)})
}

func (h *Handler) GetBySlug(c *gin.Context) {
	cat := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if cat == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.svc.List(c.Request.Context(), nil)})
}

type CreateCategoryReq struct {
	Slug         string    `json:"slug"`
	Name         i18n.Text `json:"name" binding:"required"`
	Description  i18n.Text `json:"description"`
	ParentID     *string   `json:"parentId"`
	IsActive     *bool     `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	created, err := h.svc.Create(c.Request.Context(), CreateInput{
		Slug:         req.Slug,
		Name:         req.Name,
		Description:  req.Description,
		ParentID:     req.ParentID,
		IsActive:     active,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UpdateCategoryReq struct {
	Slug         *string    `json:"slug"`
	Name         *i18n.Text `json:"name"`
	Description  *i18n.Text `json:"description"`
	ParentID     *string    `json:"parentId"`
	ClearParent  bool       `json:"clearParent"`
	IsActive     *bool      `json:"isActive"`
	DisplayOrder *int       `json:"displayOrder"`
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req UpdateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	in := UpdateInput{
		Slug:         req.Slug,
		Name:         req.Name,
		Description:  req.Description,
		IsActive:     req.IsActive,
		DisplayOrder: req.DisplayOrder,
	}
	if req.ParentID != nil {
		in.ParentID = &req.ParentID
	} else if req.ClearParent {
		var none *string
		in.ParentID = &none
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update category"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
