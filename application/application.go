package application

import (
	"fmt"
	"go-rewards/config"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/module"
	"go-rewards/shared/common/registry"

	"go.uber.org/zap"
)

// base path ของทุก route ใน module
const apiBasePath = "/api"

type Application struct {
	config          config.Config
	httpServer      HTTPServer
	serviceRegistry registry.ServiceRegistry
	eventBus        *eventbus.InMemoryEventBus
}

func New(config config.Config) *Application {
	return &Application{
		config:          config,
		httpServer:      newHTTPServer(config),
		serviceRegistry: registry.NewServiceRegistry(),
		eventBus:        eventbus.NewInMemoryEventBus(),
	}
}

func (app *Application) Run() error {
	app.httpServer.Start()

	return nil
}

func (app *Application) Shutdown() error {
	// Gracefully close fiber server
	logger.Log().Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		logger.Log().Error(fmt.Sprintf("Error shutting down server: %v", err))
		return err
	}

	// รอ integration event ที่ยังทำงานค้างอยู่ เช่น ส่งอีเมล
	app.eventBus.Wait()
	logger.Log().Info("Server stopped")

	return nil
}

// RegisterModules ลำดับของ module มีผล module ที่ใช้ query ของ module อื่นต้องมาทีหลัง
func (app *Application) RegisterModules(modules ...module.Module) error {
	for _, m := range modules {
		if err := app.registerModule(m); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	return nil
}

func (app *Application) registerModule(m module.Module) error {
	if err := m.Init(app.serviceRegistry, app.eventBus); err != nil {
		return err
	}

	// module ที่ export service ให้ module อื่นใช้
	if sp, ok := m.(module.ServiceProvider); ok {
		for _, svc := range sp.Services() {
			app.serviceRegistry.Register(svc.Key, svc.Value)
		}
	}

	m.RegisterRoutes(app.httpServer.Group(apiBasePath))

	logger.Log().Info("Module registered", zap.String("module", m.Name()))
	return nil
}

func (app *Application) AddHealthCheck(name string, check HealthCheck) {
	app.httpServer.AddHealthCheck(name, check)
}

// ServiceRegistry ใช้ resolve service ที่ module export ไว้
func (app *Application) ServiceRegistry() registry.ServiceRegistry {
	return app.serviceRegistry
}
