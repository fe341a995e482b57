package main

import (
	"fmt"
	"log"

	"ledgerman/backend/internal/config"
	"ledgerman/backend/internal/database"
	"ledgerman/backend/internal/router"

	"gorm.io/gorm"

	// Swagger imports
	_ "ledgerman/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Ledgerman API
// @version         1.0
// @description     Resource API for recording multiplayer game sessions: players, games, events and achievements.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	var db *gorm.DB
	if config.AppConfig.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using an in-memory database")
		db = database.ConnectMemory()
	} else {
		db = database.Connect(config.AppConfig.DatabaseURL)
	}

	engine := router.New(db, config.AppConfig.APIToken)

	// Swagger route
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(engine.Run(addr))
}
