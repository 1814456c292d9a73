package main

import (
	_ "claimscope/docs"
	"claimscope/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Claimscope API
// @version         1.0
// @description     Scope assembly and estimate engine for field insurance adjusters, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
