package main

import (
	_ "github.com/marianela-miguel3/yellow-bear-store-api/docs"
	"github.com/marianela-miguel3/yellow-bear-store-api/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Yellow Bear Store API
// @version         1.0.0
// @description     Quote-request backend (catalog and custom product quotes).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3000

// @BasePath  /api

func main() {
	routes.Run()
}
