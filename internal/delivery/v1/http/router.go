package http

import (
	"net/http"

	"github.com/DRSN-tech/commerce-backend/internal/usecase"
	"github.com/DRSN-tech/commerce-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// InitCatalog регистрирует маршруты сервиса каталога.
func (r *Router) InitCatalog(catalogUC usecase.CatalogUC) {
	r.router.Get("/", health("Product Service is running"))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		handler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(v1, handler)
	})
}

// InitIdentity регистрирует маршруты сервиса пользователей.
func (r *Router) InitIdentity(identityUC usecase.IdentityUC) {
	r.router.Get("/", health("User Service is running"))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		handler := NewUserHandler(identityUC, r.logger)
		v1.Post("/register", handler.register)
		v1.Post("/login", handler.login)
	})
}

// InitOrders регистрирует маршруты сервиса заказов.
func (r *Router) InitOrders(orderUC usecase.OrderUC) {
	r.router.Get("/", health("Order Service is running"))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		handler := NewOrderHandler(orderUC, r.logger)
		v1.Post("/order", handler.placeOrder)
		v1.Route("/orders", func(or chi.Router) {
			or.Get("/", handler.listOrders)
			or.Get("/{id}", handler.getOrder)
		})
	})
}

func registerProductRoutes(router chi.Router, handler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", handler.createProduct)
		pr.Get("/", handler.listProducts)
		pr.Get("/search", handler.searchProducts)
		pr.Get("/{id}", handler.getProduct)
		pr.Put("/{id}", handler.updateProduct)
		pr.Delete("/{id}", handler.deleteProduct)
	})
}

// health возвращает обработчик статического сообщения живости сервиса.
func health(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"message": message})
	}
}
