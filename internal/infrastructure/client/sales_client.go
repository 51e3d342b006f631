package client

import (
	"bytes"
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

// salesClient posts finalized sales to the backend's sale-recording endpoint.
type salesClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewSalesClient creates an HTTP client for the remote sales API.
func NewSalesClient(baseURL string, timeout time.Duration) domainRepo.SalesClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &salesClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// submitSaleResponse matches the backend's create-sale response.
type submitSaleResponse struct {
	InvoiceNo string `json:"invoiceNo"`
}

func (c *salesClient) SubmitSale(ctx context.Context, sale *entity.FinalizedSale) (string, error) {
	payload, err := json.Marshal(sale)
	if err != nil {
		return "", fmt.Errorf("encode sale: %w", err)
	}

	url := fmt.Sprintf("%s/api/create-sale", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.NewRemoteFailureError(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperror.NewRemoteFailureError("read response: " + err.Error())
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apperror.NewRemoteFailureError(fmt.Sprintf("sales API returned status %d: %s", resp.StatusCode, backendDetail(body)))
	}

	var saleResp submitSaleResponse
	if err := json.Unmarshal(body, &saleResp); err != nil {
		return "", apperror.NewRemoteFailureError("invalid sale response: " + err.Error())
	}
	return saleResp.InvoiceNo, nil
}
