package main

import (
	_ "cloudpayments_bridge/docs"
	"cloudpayments_bridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CloudPayments Bridge API
// @version         1.0
// @description     Message-channel bridge for card validation, cryptograms, 3-D Secure and Google Pay.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
