package router

import (
	"net/http"

	"ledgerman/backend/internal/auth"
	"ledgerman/backend/internal/resource"
	"ledgerman/backend/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New builds the gin engine with every resource route registered. The store
// facade is constructed here from the injected database handle and shared by
// all controllers.
func New(db *gorm.DB, apiToken string) *gin.Engine {
	st := store.New(db)

	players := resource.NewController(resource.PlayerSchema, st)
	games := resource.NewController(resource.GameSchema, st)
	events := resource.NewController(resource.EventSchema, st,
		resource.WithCreateGuard(resource.RequireActiveGame),
		resource.WithCreateHook(resource.JoinedAddsToRoster),
	)
	achievements := resource.NewController(resource.AchievementSchema, st)
	achievementTypes := resource.NewController(resource.AchievementTypeSchema, st)

	router := gin.Default()

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes (protected by the shared API token)
	apiV1 := router.Group("/api/v1")
	apiV1.Use(auth.TokenMiddleware(apiToken))
	{
		playerRoutes := apiV1.Group("/players")
		{
			playerRoutes.GET("", players.List)
			playerRoutes.POST("", players.Create)
			playerRoutes.GET("/:id", players.GetOne)
			playerRoutes.PATCH("/:id", players.Update)
			playerRoutes.DELETE("/:id", players.Delete)
			playerRoutes.GET("/:id/games", players.Related("games"))
			playerRoutes.GET("/:id/events", players.Related("events"))
			playerRoutes.GET("/:id/achievements", players.Related("achievements"))
		}

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", games.List)
			gameRoutes.POST("", games.Create)
			gameRoutes.GET("/:id", games.GetOne)
			gameRoutes.PATCH("/:id", games.Update)
			gameRoutes.DELETE("/:id", games.Delete)
			gameRoutes.GET("/:id/players", games.Related("players"))
			gameRoutes.GET("/:id/events", games.Related("events"))
			gameRoutes.GET("/:id/achievements", games.Related("achievements"))
		}

		// Events are append-only: no PATCH or DELETE routes exist.
		eventRoutes := apiV1.Group("/events")
		{
			eventRoutes.GET("", events.List)
			eventRoutes.POST("", events.Create)
			eventRoutes.GET("/:id", events.GetOne)
		}

		achievementRoutes := apiV1.Group("/achievements")
		{
			achievementRoutes.GET("", achievements.List)
			achievementRoutes.POST("", achievements.Create)
			achievementRoutes.GET("/:id", achievements.GetOne)
			achievementRoutes.PATCH("/:id", achievements.Update)
			achievementRoutes.DELETE("/:id", achievements.Delete)
		}

		achievementTypeRoutes := apiV1.Group("/achievement-types")
		{
			achievementTypeRoutes.GET("", achievementTypes.List)
			achievementTypeRoutes.POST("", achievementTypes.Create)
			achievementTypeRoutes.GET("/:id", achievementTypes.GetOne)
			achievementTypeRoutes.PATCH("/:id", achievementTypes.Update)
			achievementTypeRoutes.DELETE("/:id", achievementTypes.Delete)
		}
	}

	return router
}
