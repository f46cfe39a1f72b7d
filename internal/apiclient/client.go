package apiclient

import (
	"context"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"

	"github.com/sacvietnam/storefront/internal/model"
)

// Client talks to the remote product API. The zero value is unusable:
// obtain one from Provider.Client.
type Client struct {
	rc      *resty.Client
	baseURL string
}

func (c *Client) ready() error {
	if c == nil || c.rc == nil {
		return ErrConstructionForbidden
	}
	return nil
}

func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

func (c *Client) CreateProduct(ctx context.Context, p *model.ProductPayload) (*model.Product, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var out model.Product
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(p).
		SetResult(&out).
		SetError(&APIError{}).
		Post("/products")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p *model.ProductPayload) (*model.Product, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var out model.Product
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetBody(p).
		SetResult(&out).
		SetError(&APIError{}).
		Put("/products/{id}")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}

	return &out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	var out model.Product
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&out).
		SetError(&APIError{}).
		Get("/products/{id}")
	if err := check(resp, err); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	return &out, nil
}

// UploadTemp stores a file in the API's temporary area under folder and
// returns the path it was saved to.
func (c *Client) UploadTemp(ctx context.Context, filename string, r io.Reader, folder string) (string, error) {
	if err := c.ready(); err != nil {
		return "", err
	}

	var out model.UploadResult
	resp, err := c.rc.R().
		SetContext(ctx).
		SetFileReader("file", filename, r).
		SetFormData(map[string]string{"folder": folder}).
		SetResult(&out).
		SetError(&APIError{}).
		Post("/files/temp")
	if err := check(resp, err); err != nil {
		return "", fmt.Errorf("upload %s: %w", filename, err)
	}
	if out.Path == "" {
		return "", fmt.Errorf("upload %s: empty path in response", filename)
	}

	return out.Path, nil
}

func check(resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsError() {
		return nil
	}

	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.Status = resp.StatusCode()
	return apiErr
}
