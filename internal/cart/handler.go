package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/util"
)

const sessionCookie = "cart_session"

// SessionID returns the caller's cart session, from cookie or header.
func SessionID(c *gin.Context) string {
	if v := c.GetHeader("X-Session-ID"); v != "" {
		return v
	}
	if v, err := c.Cookie(sessionCookie); err == nil {
		return v
	}
	return ""
}

func ensureSession(c *gin.Context) string {
	if sid := SessionID(c); sid != "" {
		return sid
	}
	sid := util.NewID()
	c.SetCookie(sessionCookie, sid, 60*60*24*30, "/", "", false, true)
	return sid
}

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.store.Get(SessionID(c))})
}

type AddItemReq struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}
	items := h.store.Add(ensureSession(c), Item{
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Image:     req.Image,
		Quantity:  qty,
	})
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type UpdateQtyReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	items := h.store.SetQuantity(SessionID(c), req.ProductID, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type RemoveItemReq struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *Handler) RemoveItem(c *gin.Context) {
	var req RemoveItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	items := h.store.Remove(SessionID(c), req.ProductID)
	c.JSON(http.StatusOK, gin.H{"items": items})
}
