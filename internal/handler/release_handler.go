package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/service"
)

type ReleaseHandler struct {
	svc  *service.ReleaseService
	lang format.Lang
}

func NewReleaseHandler(svc *service.ReleaseService, lang format.Lang) *ReleaseHandler {
	return &ReleaseHandler{svc: svc, lang: lang}
}

// Download describes the current Android app build.
func (h *ReleaseHandler) Download(c *gin.Context) {
	view, err := h.svc.Latest(c.Request.Context(), requestLang(c, h.lang))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, view)
}
