package orders

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/cart"
	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/domain/order"
)

type Handler struct {
	svc   *Service
	carts *cart.Store
}

func NewHandler(svc *Service, carts *cart.Store) *Handler {
	return &Handler{svc: svc, carts: carts}
}

type CheckoutReq struct {
	CustomerID      *string       `json:"customerId"`
	CustomerName    string        `json:"customerName" binding:"required"`
	CustomerEmail   string        `json:"customerEmail" binding:"required"`
	CustomerPhone   string        `json:"customerPhone" binding:"required"`
	ShippingAddress order.Address `json:"shippingAddress" binding:"required"`
	Items           []order.Item  `json:"items" binding:"required"`
	TotalAmount     float64       `json:"totalAmount"`
	PaymentMethod   string        `json:"paymentMethod" binding:"required"`
	Notes           string        `json:"notes"`
}

// Checkout creates the order and clears the caller's cart on success.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	o, err := h.svc.Create(c.Request.Context(), CreateInput{
		CustomerID:      req.CustomerID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to place order"})
		return
	}
	if sid := cart.SessionID(c); sid != "" {
		h.carts.Clear(sid)
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) AdminList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.svc.List(c.Request.Context())})
}

func (h *Handler) AdminGet(c *gin.Context) {
	o := h.svc.Get(c.Request.Context(), c.Param("id"))
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type StatusReq struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) AdminUpdateStatus(c *gin.Context) {
	var req StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	o, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, o)
}

type PaymentStatusReq struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

func (h *Handler) AdminUpdatePaymentStatus(c *gin.Context) {
	var req PaymentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	o, err := h.svc.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update payment status"})
		return
	}
	c.JSON(http.StatusOK, o)
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
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to update orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "count": len(req.IDs)})
}
