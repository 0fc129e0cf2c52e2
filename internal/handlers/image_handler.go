package handlers

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	ucImage "github.com/BruksfildServices01/property-booking/internal/usecase/image"
)

const maxImageBytes = 8 << 20

type ImageHandler struct {
	upload *ucImage.UploadImages
	remove *ucImage.DeleteImages
}

func NewImageHandler(upload *ucImage.UploadImages, remove *ucImage.DeleteImages) *ImageHandler {
	return &ImageHandler{upload: upload, remove: remove}
}

type DeleteImagesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,required"`
}

// Upload expects a multipart form with one or more "images" files.
func (h *ImageHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		invalidRequest(c, err)
		return
	}

	var files []ucImage.File
	for _, fh := range form.File[ucImage.FieldImages] {
		if fh.Size > maxImageBytes {
			httperr.Respond(c, httperr.InvalidParam(ucImage.FieldImages))
			return
		}

		f, err := fh.Open()
		if err != nil {
			invalidRequest(c, err)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			invalidRequest(c, fmt.Errorf("read %s: %w", fh.Filename, err))
			return
		}

		files = append(files, ucImage.File{Name: fh.Filename, Data: data})
	}

	out, err := h.upload.Execute(c.Request.Context(), ucImage.UploadImagesInput{
		OwnerID:         middleware.UserID(c),
		EstablishmentID: c.Param("id"),
		Files:           files,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *ImageHandler) Delete(c *gin.Context) {
	var req DeleteImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), ucImage.DeleteImagesInput{
		OwnerID:         middleware.UserID(c),
		EstablishmentID: c.Param("id"),
		IDs:             req.IDs,
	}); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
