package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PageParams struct {
	Page     int
	PageSize int
	Offset   int
}

func ParsePage(c *gin.Context) PageParams {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	size = min(size, maxPageSize)

	return PageParams{Page: page, PageSize: size, Offset: (page - 1) * size}
}

func NewPagination(p PageParams, total int) Pagination {
	pages := 0
	if total > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return Pagination{Page: p.Page, PageSize: p.PageSize, TotalItems: total, TotalPages: pages}
}
