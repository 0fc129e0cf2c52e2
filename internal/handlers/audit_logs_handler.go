package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
)

type AuditLister interface {
	List(ctx context.Context, q audit.Query) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs AuditLister
}

func NewAuditLogsHandler(logs AuditLister) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type ListAuditLogsQuery struct {
	Action string `form:"action"`
	Entity string `form:"entity"`
	PageQuery
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var q ListAuditLogsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, err)
		return
	}

	p := pagination.Clamp(q.Page, q.PerPage)
	logs, total, err := h.logs.List(c.Request.Context(), audit.Query{
		UserID: middleware.UserID(c),
		Action: q.Action,
		Entity: q.Entity,
		Params: p,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, pagination.NewPage(logs, total, p))
}
