package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/commerce-backend/internal/cfg"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
)

// Client — HTTP-клиент каталога товаров для сервиса заказов.
// Вызов ограничен таймаутом клиента; повторов нет, решение о ретраях
// остаётся за вызывающим.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(cfg *cfg.CatalogClientCfg, logger logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// productResponse — тело ответа каталога на GET /products/{id}.
type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// GetProduct запрашивает товар у каталога.
// Транспортная ошибка или таймаут — e.ErrCatalogUnavailable,
// любой ответ кроме 200 — e.ErrProductNotFound.
func (c *Client) GetProduct(ctx context.Context, id string) (*usecase.ProductInfo, error) {
	const op = "catalog.Client.GetProduct"

	url := fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("catalog request failed: %v", err)
		return nil, e.Wrap(op, e.ErrCatalogUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	var body productResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warnf("catalog response decode failed: %v", err)
		return nil, e.Wrap(op, e.ErrCatalogUnavailable)
	}

	return &usecase.ProductInfo{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Quantity:    body.Quantity,
	}, nil
}
