package dbproxy

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/RadosBajic/mobilni-shop-srbija-sub000/internal/store"
)

// Handler serves POST /api/db: the endpoint browser-context clients proxy
// their statements through. The statement runs verbatim on the direct
// client; callers treat any non-2xx response as transport failure.
type Handler struct {
	direct *store.Direct
	log    *logrus.Logger
}

func NewHandler(direct *store.Direct, log *logrus.Logger) *Handler {
	return &Handler{direct: direct, log: log}
}

type ExecReq struct {
	Query  string `json:"query" binding:"required"`
	Params []any  `json:"params"`
}

func (h *Handler) Exec(c *gin.Context) {
	if h.direct == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}
	var req ExecReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	rows, err := h.direct.Raw(c.Request.Context(), req.Query, req.Params...)
	if err != nil {
		h.log.WithError(err).WithField("query", req.Query).Error("db proxy: statement failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}
