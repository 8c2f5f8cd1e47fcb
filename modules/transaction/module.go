package transaction

import (
	"go-rewards/modules/transaction/internal/domain/event"
	"go-rewards/modules/transaction/internal/domain/eventhandler"
	"go-rewards/modules/transaction/internal/feature/create"
	listinrange "go-rewards/modules/transaction/internal/feature/list-in-range"
	"go-rewards/modules/transaction/internal/repository"
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
	return "transaction"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	dispatcher := domain.NewSimpleDomainEventDispatcher()
	dispatcher.Register(event.TransactionRecordedDomainEventType, eventhandler.NewTransactionRecordedDomainEventHandler(eventBus))

	repo := repository.NewTransactionRepository(m.mCtx.DBCtx)

	// ใช้ query ของโมดูล customer ผ่าน mediator จึงต้อง init หลังโมดูล customer
	mediator.Register(create.NewCreateTransactionCommandHandler(m.mCtx.Transactor, repo, dispatcher))
	mediator.Register(listinrange.NewListTransactionsInRangeQueryHandler(repo))

	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	transactions := router.Group("/transactions")
	create.NewEndpoint(transactions, "")
}
