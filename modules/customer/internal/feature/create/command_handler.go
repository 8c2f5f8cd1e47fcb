package create

import (
	"context"
	"go-rewards/modules/customer/domainerrors"
	"go-rewards/modules/customer/internal/model"
	"go-rewards/modules/customer/internal/repository"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/storage/sqldb/transactor"

	"go.opentelemetry.io/otel/trace"
)

type createCustomerCommandHandler struct {
	transactor transactor.Transactor
	custRepo   repository.CustomerRepository
	dispatcher domain.DomainEventDispatcher
}

func NewCreateCustomerCommandHandler(
	transactor transactor.Transactor,
	custRepo repository.CustomerRepository,
	dispatcher domain.DomainEventDispatcher) *createCustomerCommandHandler {
	return &createCustomerCommandHandler{
		transactor: transactor,
		custRepo:   custRepo,
		dispatcher: dispatcher,
	}
}

func (h *createCustomerCommandHandler) Handle(ctx context.Context, cmd *CreateCustomerCommand) (*CreateCustomerCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:CreateCustomerCommand")
	defer span.End()

	if err := h.validateBusinessInvariant(ctx, cmd); err != nil {
		return nil, err
	}

	customer := model.NewCustomer(cmd.Name, cmd.Email, cmd.ContactNumber)

	err := h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		// unique constraint ของ customer_email กันกรณีสมัครพร้อมกันที่ผ่านการตรวจด้านบนมาได้ทั้งคู่
		if err := h.custRepo.Create(ctx, customer); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		events := customer.PullDomainEvents()

		// ให้ dispatch หลัง commit แล้ว
		registerPostCommitHook(func(ctx context.Context) error {
			return h.dispatcher.Dispatch(ctx, events)
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return NewCreateCustomerCommandResult(customer.ToInfo()), nil
}

func (h *createCustomerCommandHandler) validateBusinessInvariant(ctx context.Context, cmd *CreateCustomerCommand) error {
	exists, err := h.custRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		logger.FromContext(ctx).Error(err.Error())
		return err
	}

	if exists {
		return domainerrors.ErrEmailExists
	}
	return nil
}
