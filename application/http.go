package application

import (
	"context"
	"fmt"
	"go-rewards/application/middleware"
	"go-rewards/build"
	"go-rewards/config"
	"go-rewards/shared/common/logger"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"
)

// HealthCheck คืน error ถ้า dependency นั้นใช้งานไม่ได้
type HealthCheck func(ctx context.Context) error

type HTTPServer interface {
	Start()
	Shutdown() error
	Group(prefix string) fiber.Router
	AddHealthCheck(name string, check HealthCheck)
}

type httpServer struct {
	config config.Config
	app    *fiber.App
	checks map[string]HealthCheck
}

func newHTTPServer(config config.Config) HTTPServer {
	s := &httpServer{
		config: config,
		checks: map[string]HealthCheck{},
	}
	s.app = newFiber(config, s.health)
	return s
}

func newFiber(config config.Config, health fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      fmt.Sprintf("Go Rewards version %s", build.Version),
		ErrorHandler: middleware.ErrorHandler,
	})

	// global middleware
	app.Use(middleware.Observability()) // จัดการ log + trace + metric
	app.Use(cors.New())                 // CORS ลำดับแรก เพื่อให้ OPTIONS request ผ่านได้เสมอ
	app.Use(recover.New())              // auto-recovers from panic (internal only)
	app.Use(middleware.ResponseError())

	app.Get("/docs/*", middleware.APIDoc(config))
	app.Get("/health", health)

	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(map[string]string{"version": build.Version, "time": build.Time})
	})

	return app
}

func (s *httpServer) Start() {
	go func() {
		logger.Log().Info(fmt.Sprintf("Starting server on port %d", s.config.HTTPPort))
		if err := s.app.Listen(fmt.Sprintf(":%d", s.config.HTTPPort)); err != nil && err != http.ErrServerClosed {
			logger.Log().Fatal(fmt.Sprintf("Error starting server: %v", err))
		}
	}()
}

func (s *httpServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.GracefulTimeout)
	defer cancel()
	return s.app.ShutdownWithContext(ctx)
}

// ใช้สำหรับสร้าง base url router เช่น /api
func (s *httpServer) Group(prefix string) fiber.Router {
	return s.app.Group(prefix)
}

// ต้องเรียกก่อน Start
func (s *httpServer) AddHealthCheck(name string, check HealthCheck) {
	s.checks[name] = check
}

func (s *httpServer) health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	components := make(map[string]string, len(s.checks))
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			logger.FromContext(ctx).Warn("health check failed", zap.String("component", name), zap.Error(err))
			components[name] = "DOWN"
			status = fiber.StatusServiceUnavailable
			continue
		}
		components[name] = "UP"
	}

	overall := "UP"
	if status != fiber.StatusOK {
		overall = "DOWN"
	}
	return c.Status(status).JSON(fiber.Map{"status": overall, "components": components})
}
