package middleware

import (
	"fmt"
	"go-rewards/build"
	"go-rewards/config"
	"go-rewards/docs"
	"strings"

	"github.com/gofiber/fiber/v3"
	fiberSwagger "github.com/somprasongd/fiber-swagger"
)

func APIDoc(config config.Config) fiber.Handler {
	host := removeProtocol(config.GatewayHost)
	basePath := config.GatewayBasePath
	schemas := []string{"http", "https"}

	if len(host) == 0 {
		host = fmt.Sprintf("localhost:%d", config.HTTPPort)
	}

	if len(basePath) == 0 {
		basePath = "/api"
	}

	docs.SwaggerInfo.Title = "Go Rewards API"
	docs.SwaggerInfo.Description = "Customer loyalty rewards: register customers, record purchases, and calculate monthly reward points."
	docs.SwaggerInfo.Version = build.Version
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Schemes = schemas

	return fiberSwagger.WrapHandler
}

func removeProtocol(url string) string {
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")
	return url
}
