package model

import (
	"time"
)

type DiscountSpec struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Product is the remote API's product document.
type Product struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Discount    DiscountSpec `json:"discount"`
	Images      []string     `json:"images"`
	Inventory   int          `json:"inventory"`
}

// ProductPayload is what create and update send to the remote API.
type ProductPayload struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Discount    DiscountSpec `json:"discount"`
	Images      []string     `json:"images"`
	Inventory   int          `json:"inventory"`
}

type UploadResult struct {
	Path string `json:"path"`
}

type Submission struct {
	ID             int64     `json:"id"`
	IdempotencyKey string    `json:"idempotency_key"`
	Action         string    `json:"action"`
	ProductID      string    `json:"product_id,omitempty"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	ActionCreate = "create"
	ActionEdit   = "edit"

	SubmissionPending   = "PENDING"
	SubmissionSucceeded = "SUCCEEDED"
	SubmissionFailed    = "FAILED"
)

type AppRelease struct {
	ID            int64     `json:"id"`
	AppName       string    `json:"app_name"`
	Version       string    `json:"version"`
	ReleaseDate   time.Time `json:"release_date"`
	SizeLabel     string    `json:"size"`
	Platform      string    `json:"platform"`
	APKURL        string    `json:"apk"`
	DescriptionEn string    `json:"-"`
	DescriptionVi string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
