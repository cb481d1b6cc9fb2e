package routes

import (
	"log"
	"os"
	"strconv"

	_ "alufab_quotes/docs" // This will be auto-generated
	"alufab_quotes/internal/adapter/http/handlers"
	repository2 "alufab_quotes/internal/adapter/persistence/repository"
	"alufab_quotes/internal/infrastructure/cache"
	"alufab_quotes/internal/infrastructure/database"
	"alufab_quotes/internal/usecase"
	"alufab_quotes/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	mtoRepo := repository2.NewMTODynamoRepository(ddb)

	var catalogRepo interfaces.ICatalogRepository = repository2.NewCatalogDynamoRepository(ddb)

	// Redis is optional: without it every pricing call rescans the catalog
	// tables, which is fine for small deployments.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := cache.NewRedisClient(redisURL)
		if err != nil {
			log.Printf("Catalog cache not configured: %v", err)
		} else {
			catalogRepo = cache.NewCatalogCache(catalogRepo, rdb)
		}
	}

	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, projectRepo, catalogRepo)
	mtoUseCase := usecase.NewMTOUseCase(quotationRepo, catalogRepo, mtoRepo)

	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	mtoHandler := handlers.NewMTOHandler(mtoUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, quotationHandler, mtoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
