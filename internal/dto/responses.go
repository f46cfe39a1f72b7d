package dto

import (
	"github.com/sacvietnam/storefront/internal/model"
	"github.com/sacvietnam/storefront/internal/service"
)

type ErrorListResponse struct {
	Error  string                    `json:"error"`
	Errors []service.ValidationError `json:"errors,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type SubmissionListResponse struct {
	Data       []model.Submission `json:"data"`
	Pagination Pagination         `json:"pagination"`
}
