package customers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/order"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.svc.List(c.Request.Context())})
}

func (h *Handler) AdminGet(c *gin.Context) {
	cust := h.svc.Get(c.Request.Context(), c.Param("id"))
	if cust == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, cust)
}

type CreateCustomerReq struct {
	FirstName string        `json:"firstName" binding:"required"`
	LastName  string        `json:"lastName" binding:"required"`
	Email     string        `json:"email" binding:"required,email"`
	Phone     string        `json:"phone"`
	Address   order.Address `json:"address"`
}

func (h *Handler) AdminCreate(c *gin.Context) {
	var req CreateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type UpdateCustomerReq struct {
	FirstName *string        `json:"firstName"`
	LastName  *string        `json:"lastName"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
	Address   *order.Address `json:"address"`
}

func (h *Handler) AdminUpdate(c *gin.Context) {
	var req UpdateCustomerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), UpdateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) AdminDelete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
