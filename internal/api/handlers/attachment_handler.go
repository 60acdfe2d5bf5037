package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/request-portal/internal/application"
	"github.com/linskybing/request-portal/internal/config"
	"github.com/linskybing/request-portal/pkg/response"
	"github.com/linskybing/request-portal/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload godoc
// @Summary Upload an attachment
// @Description Returns the object key to use as the value of a file field.
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse "File too large"
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, config.AttachmentMaxBytes+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	if fh.Size > config.AttachmentMaxBytes {
		writeError(c, application.ErrFileTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read file"})
		return
	}
	defer f.Close()

	key, err := h.svc.Upload(c.Request.Context(), uid, fh.Filename, fh.Size, fh.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.UploadResponse{Key: key, Size: fh.Size})
}
