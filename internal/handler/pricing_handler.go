package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sacvietnam/storefront/internal/dto"
	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/service"
)

type PricingHandler struct {
	svc  *service.PricingService
	lang format.Lang
}

func NewPricingHandler(svc *service.PricingService, lang format.Lang) *PricingHandler {
	return &PricingHandler{svc: svc, lang: lang}
}

// Preview godoc: POST /api/v1/pricing/preview
func (h *PricingHandler) Preview(c *gin.Context) {
	var req dto.PricingPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	view, err := h.svc.Preview(req.Price, req.Spec(), requestLang(c, h.lang))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}
