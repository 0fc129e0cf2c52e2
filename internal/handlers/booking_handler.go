package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/property-booking/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateBookedDate
	list   *ucBooking.ListUserBookedDates
}

func NewBookingHandler(
	create *ucBooking.CreateBookedDate,
	list *ucBooking.ListUserBookedDates,
) *BookingHandler {
	return &BookingHandler{create: create, list: list}
}

// The date format is checked by the use case so the error names the field.
type CreateBookedDateRequest struct {
	EstablishmentAttachmentID string `json:"establishmentAttachmentId" binding:"required"`
	BookedDate                string `json:"bookedDate" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookedDateInput{
		UserID:                    middleware.UserID(c),
		EstablishmentAttachmentID: req.EstablishmentAttachmentID,
		BookedDate:                req.BookedDate,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	var q PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c, err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), ucBooking.ListUserBookedDatesInput{
		UserID:  middleware.UserID(c),
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}
