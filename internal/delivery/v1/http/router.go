package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/harichselvamc/inventory-app-backend/docs" // Импорт сгенерированных файлов
	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/harichselvamc/inventory-app-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, puUC usecase.PurchaseUC, rpUC usecase.ReportUC, hlUC usecase.HealthUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	hlHandler := NewHealthHandler(hlUC)
	r.router.Get("/health", hlHandler.health)

	prHandler := NewProductHandler(prUC, r.logger)
	registerProductRoutes(r.router, prHandler)

	puHandler := NewPurchaseHandler(puUC, r.logger)
	registerPurchaseRoutes(r.router, puHandler)

	rpHandler := NewReportHandler(rpUC, r.logger)
	r.router.Get("/reports/sales", rpHandler.salesReport)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.createProduct)
		pr.Route("/{id}", func(item chi.Router) {
			item.Get("/", prHandler.getProduct)
			item.Put("/", prHandler.updateProduct)
			item.Delete("/", prHandler.deleteProduct)
		})
	})
}

func registerPurchaseRoutes(router chi.Router, puHandler *PurchaseHandler) {
	router.Route("/purchases", func(pu chi.Router) {
		pu.Post("/", puHandler.makePurchase)
		pu.Post("/bulk", puHandler.makeBulkPurchase)
	})
}
