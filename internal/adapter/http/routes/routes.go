package routes

import (
	"log"
	"strconv"

	_ "claimscope/docs" // This will be auto-generated
	"claimscope/internal/adapter/http/handlers"
	repository2 "claimscope/internal/adapter/persistence/repository"
	"claimscope/internal/config"
	"claimscope/internal/infrastructure/database"
	"claimscope/internal/usecase"

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
	cfg := config.FromEnv()

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	priceRepo := repository2.NewPriceDynamoRepository(ddb)
	roomRepo := repository2.NewRoomDynamoRepository(ddb)
	scopeRepo := repository2.NewScopeDynamoRepository(ddb)

	autoScopeUseCase := usecase.NewAutoScopeUseCase(cfg, catalogRepo, roomRepo, scopeRepo)
	estimateUseCase := usecase.NewEstimateUseCase(cfg, catalogRepo, priceRepo, roomRepo, scopeRepo)
	roomUseCase := usecase.NewRoomUseCase(catalogRepo, roomRepo, scopeRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, priceRepo)

	autoScopeHandler := handlers.NewAutoScopeHandler(autoScopeUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	roomHandler := handlers.NewRoomHandler(roomUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addScopingRoutes(v1, autoScopeHandler, roomHandler, estimateHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
