package main

import (
	_ "alufab_quotes/docs"
	"alufab_quotes/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Aluminium Quotation Service API
// @version         1.0
// @description     Quotation pricing, revisions and material take-off backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
