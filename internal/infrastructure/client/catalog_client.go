package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	domainRepo "github.com/salepoint/salepoint-api/internal/domain/repository"
	"github.com/salepoint/salepoint-api/pkg/apperror"
)

// catalogClient talks to the backend's category/product endpoints.
type catalogClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogClient creates an HTTP client for the remote catalog API.
func NewCatalogClient(baseURL string, timeout time.Duration) domainRepo.CatalogClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &catalogClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// categoryListResponse matches the backend's category envelope.
type categoryListResponse struct {
	Data []entity.Category `json:"data"`
}

func (c *catalogClient) ListCategories(ctx context.Context) ([]entity.Category, error) {
	url := fmt.Sprintf("%s/api/category", c.baseURL)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp categoryListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperror.NewRemoteFailureError("invalid category response: " + err.Error())
	}
	return resp.Data, nil
}

func (c *catalogClient) ListProductsByCategory(ctx context.Context, categoryID int) ([]entity.ProductDescriptor, error) {
	url := fmt.Sprintf("%s/api/products-load?category_id=%d", c.baseURL, categoryID)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	// The products endpoint returns a bare JSON array.
	var products []entity.ProductDescriptor
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, apperror.NewRemoteFailureError("invalid product response: " + err.Error())
	}

	// Product descriptors carry their owning category so cart lines keep the
	// reference even when the backend omits it.
	for i := range products {
		if products[i].CategoryID == 0 {
			products[i].CategoryID = categoryID
		}
	}
	return products, nil
}

func (c *catalogClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewRemoteFailureError(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewRemoteFailureError("read response: " + err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewRemoteFailureError(fmt.Sprintf("catalog returned status %d: %s", resp.StatusCode, backendDetail(body)))
	}
	return body, nil
}

// backendDetail extracts a human-readable message from an error body, falling
// back to the raw payload.
func backendDetail(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	const max = 200
	if len(body) > max {
		body = body[:max]
	}
	return string(body)
}
