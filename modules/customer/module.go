package customer

import (
	"go-rewards/modules/customer/internal/domain/event"
	"go-rewards/modules/customer/internal/domain/eventhandler"
	"go-rewards/modules/customer/internal/feature/create"
	getbyemail "go-rewards/modules/customer/internal/feature/get-by-email"
	getbyid "go-rewards/modules/customer/internal/feature/get-by-id"
	"go-rewards/modules/customer/internal/feature/list"
	"go-rewards/modules/customer/internal/repository"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/common/module"
	"go-rewards/shared/common/registry"

	"github.com/gofiber/fiber/v3"
)

func NewModule(mCtx *module.ModuleContext) module.Module {
	return &moduleImp{mCtx: mCtx}
}

type moduleImp struct {
	mCtx *module.ModuleContext
}

func (m *moduleImp) Name() string {
	return "customer"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	// dispatcher แยกของโมดูลนี้ ลงทะเบียน handler ของ domain event ได้เองอย่างอิสระ
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register(event.CustomerRegisteredDomainEventType, eventhandler.NewCustomerRegisteredDomainEventHandler(eventBus))

	repo := repository.NewCustomerRepository(m.mCtx.DBCtx)

	mediator.Register(create.NewCreateCustomerCommandHandler(m.mCtx.Transactor, repo, dispatcher))
	mediator.Register(list.NewListCustomersQueryHandler(repo))
	mediator.Register(getbyid.NewGetCustomerByIDQueryHandler(repo))
	mediator.Register(getbyemail.NewGetCustomerByEmailQueryHandler(repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	customers := router.Group("/customers")
	create.NewEndpoint(customers, "/add")
	list.NewEndpoint(customers, "/get")
	// ต้องลงทะเบียนก่อน /:id ไม่งั้น by-email จะถูกตีความเป็น id
	getbyemail.NewEndpoint(customers, "/by-email")
	getbyid.NewEndpoint(customers, "/:id")
}
