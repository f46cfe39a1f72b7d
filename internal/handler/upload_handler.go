package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sacvietnam/storefront/internal/dto"
	"github.com/sacvietnam/storefront/internal/service"
)

const maxUploadFiles = 10

type UploadHandler struct {
	svc *service.UploadService
}

func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload accepts multipart "files" (or "files[]") and stores them as temp product images.
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{Error: "expected multipart form: " + err.Error()})
		return
	}

	headers := append(form.File["files"], form.File["files[]"]...)
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{Error: "no files provided"})
		return
	}
	if len(headers) > maxUploadFiles {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: fmt.Sprintf("at most %d files per upload", maxUploadFiles),
		})
		return
	}

	files := make([]service.FileInput, len(headers))
	for i, fh := range headers {
		files[i] = service.FileInput{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		}
	}

	c.JSON(http.StatusOK, h.svc.UploadImages(c.Request.Context(), files))
}
