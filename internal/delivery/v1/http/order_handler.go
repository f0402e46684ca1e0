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

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type placeOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

type orderResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Status    string `json:"status"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:        order.ID,
		ProductID: order.ProductID,
		Quantity:  order.Quantity,
		Status:    string(order.Status),
	}
}

func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		o.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.Wrap(err.Error(), e.ErrStatusBadRequest))
		return
	}

	res, err := o.orderUC.PlaceOrder(r.Context(), usecase.NewPlaceOrderReq(req.ProductID, req.Quantity))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, placeOrderResponse{
		Message: "Order placed successfully",
		OrderID: res.OrderID,
		Status:  string(res.Status),
	})
}

func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUC.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, newOrderResponse(&orders[i]))
	}

	WriteSuccess(w, http.StatusOK, out)
}

func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUC.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(order))
}
