package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/property-booking/internal/domain/commodity"
	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucCommodity "github.com/BruksfildServices01/property-booking/internal/usecase/commodity"
)

type CommodityHandler struct {
	handle *ucCommodity.HandleCommodities
}

func NewCommodityHandler(handle *ucCommodity.HandleCommodities) *CommodityHandler {
	return &CommodityHandler{handle: handle}
}

type CommodityInput struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon" binding:"omitempty,url"`
}

type CommodityUpdate struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon" binding:"omitempty,url"`
}

type HandleCommoditiesRequest struct {
	ToCreate []CommodityInput  `json:"toCreate" binding:"omitempty,dive"`
	ToUpdate []CommodityUpdate `json:"toUpdate" binding:"omitempty,dive"`
	ToDelete []string          `json:"toDelete" binding:"omitempty,dive,required"`
}

func (h *CommodityHandler) Handle(c *gin.Context) {
	var req HandleCommoditiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	in := ucCommodity.HandleCommoditiesInput{
		OwnerID:         middleware.UserID(c),
		EstablishmentID: c.Param("id"),
		ToDelete:        req.ToDelete,
	}
	for _, cr := range req.ToCreate {
		in.ToCreate = append(in.ToCreate, domain.Input{Name: cr.Name, Icon: cr.Icon})
	}
	for _, up := range req.ToUpdate {
		in.ToUpdate = append(in.ToUpdate, domain.Update{ID: up.ID, Name: up.Name, Icon: up.Icon})
	}

	out, err := h.handle.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, out)
}
