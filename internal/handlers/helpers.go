package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
)

// PageQuery is embedded by listing requests. Zero means unset; any other
// out of range value is clamped by the use case.
type PageQuery struct {
	Page    int `form:"page"`
	PerPage int `form:"perPage"`
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}

// RouteNotFound answers unmatched paths in the same error shape as the API.
func RouteNotFound(c *gin.Context) {
	httperr.NotFound(c, "route_not_found", "Route not found.")
}
