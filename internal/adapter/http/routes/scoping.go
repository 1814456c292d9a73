package routes

import (
	"claimscope/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAutoScope = "/autoscope"
	PathRooms     = "/rooms"
	PathSessions  = "/sessions"
	PathCatalog   = "/catalog"
	PathPrices    = "/prices"
)

func addScopingRoutes(
	rg *gin.RouterGroup,
	autoScopeHandler *handlers.AutoScopeHandler,
	roomHandler *handlers.RoomHandler,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	rg.POST(PathAutoScope, autoScopeHandler.AutoScope)

	rooms := rg.Group(PathRooms)
	{
		rooms.PUT("/:id", roomHandler.UpsertRoom)
		rooms.PUT("", roomHandler.UpsertRoom)
	}

	sessions := rg.Group(PathSessions)
	{
		sessions.POST("/:session_id/estimate", estimateHandler.BuildEstimate)
		sessions.GET("/:session_id/validation", estimateHandler.ValidateSession)
		sessions.DELETE("/:session_id/items/:item_id", autoScopeHandler.RemoveItem)
	}

	rg.POST(PathCatalog+"/seed", catalogHandler.SeedCatalog)
	rg.POST(PathPrices+"/seed", catalogHandler.SeedPrices)
}
