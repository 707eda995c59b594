package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jvillalobos/ventasapi/internal/adapter/config"
	"github.com/jvillalobos/ventasapi/internal/adapter/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	m *metrics.Metrics,
	clientHandler *ClientHandler,
	productHandler *ProductHandler,
	orderHandler *OrderHandler,
	orderLineHandler *OrderLineHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(logger, m))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		clientes := api.Group("/clientes")
		{
			clientes.GET("/getAll", clientHandler.ListClients)
			clientes.GET("/getById/:id", clientHandler.GetClient)
			clientes.POST("/create", clientHandler.CreateClient)
			clientes.PUT("/update", clientHandler.UpdateClient)
		}

		productos := api.Group("/productos")
		{
			productos.GET("/getAll", productHandler.ListProducts)
			productos.GET("/getById/:id", productHandler.GetProduct)
			productos.POST("/create", productHandler.CreateProduct)
			productos.PUT("/update", productHandler.UpdateProduct)
		}

		ordenes := api.Group("/ordenes")
		{
			ordenes.POST("/create", orderHandler.CreateOrder)
			ordenes.GET("/getById/:id", orderHandler.GetOrder)
		}

		detalles := api.Group("/detalles-orden")
		{
			detalles.GET("", orderLineHandler.ListOrderLines)
			detalles.GET("/:id", orderLineHandler.GetOrderLine)
			detalles.GET("/orden/:ordenId", orderLineHandler.ListOrderLinesByOrder)
			detalles.PUT("/:id", orderLineHandler.UpdateOrderLine)
			detalles.DELETE("/:id", orderLineHandler.DeleteOrderLine)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
