package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sacvietnam/storefront/internal/dto"
	"github.com/sacvietnam/storefront/internal/format"
	"github.com/sacvietnam/storefront/internal/service"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type ProductHandler struct {
	catalog *service.CatalogService
	editor  *service.EditorService
	lang    format.Lang
}

func NewProductHandler(catalog *service.CatalogService, editor *service.EditorService, lang format.Lang) *ProductHandler {
	return &ProductHandler{catalog: catalog, editor: editor, lang: lang}
}

func (h *ProductHandler) Get(c *gin.Context) {
	view, err := h.catalog.Product(c.Request.Context(), c.Param("id"), requestLang(c, h.lang))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if view.Cached {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.JSON(http.StatusOK, view)
}

// Editor returns the edit form's initial values.
func (h *ProductHandler) Editor(c *gin.Context) {
	state, err := h.editor.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	res, err := h.editor.Create(c.Request.Context(), req.Form(), c.GetHeader(IdempotencyKeyHeader), requestLang(c, h.lang))
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, res)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorListResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	res, err := h.editor.Update(c.Request.Context(), c.Param("id"), req.Form(), c.GetHeader(IdempotencyKeyHeader), requestLang(c, h.lang))
	if err != nil {
		_ = c.Error(err)
		return
	}

	if res.Replayed {
		c.Header(replayedHeader, "true")
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) Submissions(c *gin.Context) {
	page := dto.ParsePage(c)

	subs, total, err := h.editor.History(c.Request.Context(), c.Param("id"), page.PageSize, page.Offset)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SubmissionListResponse{
		Data:       subs,
		Pagination: dto.NewPagination(page, total),
	})
}
