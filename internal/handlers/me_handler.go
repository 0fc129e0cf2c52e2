package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucUser "github.com/BruksfildServices01/property-booking/internal/usecase/user"
)

type MeHandler struct {
	get    *ucUser.GetProfile
	update *ucUser.UpdateProfile
}

func NewMeHandler(get *ucUser.GetProfile, update *ucUser.UpdateProfile) *MeHandler {
	return &MeHandler{get: get, update: update}
}

type UpdateMeRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Contact *string `json:"contact,omitempty"`

	Zipcode    *string `json:"zipcode,omitempty"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Complement *string `json:"complement,omitempty"`
	District   *string `json:"district,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	u, err := h.update.Execute(c.Request.Context(), ucUser.UpdateProfileInput{
		UserID:     middleware.UserID(c),
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Zipcode:    req.Zipcode,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}
