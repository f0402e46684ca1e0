package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/commerce-backend/internal/domain"
	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/e"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// productRequest — тело запроса на создание/обновление товара.
// Цена принимается как JSON-число и проверяется на точность до копеек.
type productRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Quantity    int64       `json:"quantity"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

func newProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Quantity:    product.Quantity,
	}
}

func newProductListResponse(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, newProductResponse(&products[i]))
	}
	return out
}

func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, price, err := decodeProductRequest(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUC.CreateProduct(r.Context(),
		usecase.NewCreateProductReq(req.Name, req.Description, price, req.Quantity))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductListResponse(products))
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := p.catalogUC.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.SearchProducts(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductListResponse(products))
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, price, err := decodeProductRequest(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := p.catalogUC.UpdateProduct(r.Context(),
		usecase.NewUpdateProductReq(chi.URLParam(r, "id"), req.Name, req.Description, price, req.Quantity))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := p.catalogUC.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeProductRequest(r *http.Request) (*productRequest, float64, error) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, 0, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, 0, err
	}

	return &req, price, nil
}
