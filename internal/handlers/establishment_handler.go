package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucEstablishment "github.com/BruksfildServices01/property-booking/internal/usecase/establishment"
)

// ======================================================
// HANDLER
// ======================================================

type EstablishmentHandler struct {
	create    *ucEstablishment.CreateEstablishment
	update    *ucEstablishment.UpdateEstablishment
	get       *ucEstablishment.GetEstablishment
	list      *ucEstablishment.ListEstablishments
	listOwner *ucEstablishment.ListOwnerEstablishments
}

func NewEstablishmentHandler(
	create *ucEstablishment.CreateEstablishment,
	update *ucEstablishment.UpdateEstablishment,
	get *ucEstablishment.GetEstablishment,
	list *ucEstablishment.ListEstablishments,
	listOwner *ucEstablishment.ListOwnerEstablishments,
) *EstablishmentHandler {
	return &EstablishmentHandler{
		create:    create,
		update:    update,
		get:       get,
		list:      list,
		listOwner: listOwner,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateEstablishmentRequest struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`

	Zipcode    string `json:"zipcode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`

	MinBookingHour string `json:"minBookingHour"`
	MaxBookingHour string `json:"maxBookingHour"`
}

type UpdateEstablishmentRequest struct {
	Type        *string `json:"type,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Contact     *string `json:"contact,omitempty"`

	Zipcode    *string `json:"zipcode,omitempty"`
	Street     *string `json:"street,omitempty"`
	Number     *string `json:"number,omitempty"`
	Complement *string `json:"complement,omitempty"`
	District   *string `json:"district,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`

	MinBookingHour *string `json:"minBookingHour,omitempty"`
	MaxBookingHour *string `json:"maxBookingHour,omitempty"`
}

type ListEstablishmentsQuery struct {
	Type  string `form:"type" binding:"omitempty,establishment_type"`
	City  string `form:"city"`
	State string `form:"state" binding:"omitempty,br_state"`
	Name  string `form:"name"`
	PageQuery
}

// ======================================================
// HANDLERS
// ======================================================

func (h *EstablishmentHandler) Create(c *gin.Context) {
	var req CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	est, err := h.create.Execute(c.Request.Context(), ucEstablishment.CreateEstablishmentInput{
		OwnerID:        middleware.UserID(c),
		Type:           req.Type,
		Name:           req.Name,
		Description:    req.Description,
		Contact:        req.Contact,
		Zipcode:        req.Zipcode,
		Street:         req.Street,
		Number:         req.Number,
		Complement:     req.Complement,
		District:       req.District,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		MinBookingHour: req.MinBookingHour,
		MaxBookingHour: req.MaxBookingHour,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, est)
}

func (h *EstablishmentHandler) Update(c *gin.Context) {
	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	est, err := h.update.Execute(c.Request.Context(), ucEstablishment.UpdateEstablishmentInput{
		OwnerID:        middleware.UserID(c),
		ID:             c.Param("id"),
		Type:           req.Type,
		Name:           req.Name,
		Description:    req.Description,
		Contact:        req.Contact,
		Zipcode:        req.Zipcode,
		Street:         req.Street,
		Number:         req.Number,
		Complement:     req.Complement,
		District:       req.District,
		City:           req.City,
		State:          req.State,
		Country:        req.Country,
		MinBookingHour: req.MinBookingHour,
		MaxBookingHour: req.MaxBookingHour,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, est)
}

func (h *EstablishmentHandler) Get(c *gin.Context) {
	est, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, est)
}

func (h *EstablishmentHandler) List(c *gin.Context) {
	var q ListEstablishmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), ucEstablishment.ListEstablishmentsInput{
		Type:    q.Type,
		City:    q.City,
		State:   q.State,
		Name:    q.Name,
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}

func (h *EstablishmentHandler) ListMine(c *gin.Context) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, err)
		return
	}

	page, err := h.listOwner.Execute(c.Request.Context(), ucEstablishment.ListOwnerEstablishmentsInput{
		OwnerID: middleware.UserID(c),
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}
