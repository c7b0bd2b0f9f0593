package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

// Handler backs the admin settings page: resetting the local emulation
// store to its fixtures. Product export/import lives with the products
// handler.
type Handler struct {
	local *store.Local
	log   *logrus.Logger
}

func NewHandler(local *store.Local, log *logrus.Logger) *Handler {
	return &Handler{local: local, log: log}
}

// Reset clears both durable collections and reseeds them. Clients reload
// after calling this.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.local.Reset(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("settings: local store reset failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset local data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
