package create

import (
	"context"
	"go-rewards/modules/transaction/domainerrors"
	"go-rewards/modules/transaction/internal/model"
	"go-rewards/modules/transaction/internal/repository"
	"go-rewards/shared/common/domain"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/common/storage/sqldb/transactor"
	"go-rewards/shared/contract/customercontract"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type createTransactionCommandHandler struct {
	transactor transactor.Transactor
	txRepo     repository.TransactionRepository
	dispatcher domain.DomainEventDispatcher
}

func NewCreateTransactionCommandHandler(
	transactor transactor.Transactor,
	txRepo repository.TransactionRepository,
	dispatcher domain.DomainEventDispatcher) *createTransactionCommandHandler {
	return &createTransactionCommandHandler{
		transactor: transactor,
		txRepo:     txRepo,
		dispatcher: dispatcher,
	}
}

func (h *createTransactionCommandHandler) Handle(ctx context.Context, cmd *CreateTransactionCommand) (*CreateTransactionCommandResult, error) {
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("command_handler")
	ctx, span := tracer.Start(ctx, "Handle:CreateTransactionCommand")
	defer span.End()

	customer, err := h.resolveCustomer(ctx, cmd)
	if err != nil {
		return nil, err
	}

	tx := model.NewTransaction(customer.ID, customer.Email, cmd.Amount, cmd.TransactionDate)

	err = h.transactor.WithinTransaction(ctx, func(ctx context.Context, registerPostCommitHook func(transactor.PostCommitHook)) error {
		if err := h.txRepo.Create(ctx, tx); err != nil {
			logger.FromContext(ctx).Error(err.Error())
			return err
		}

		events := tx.PullDomainEvents()

		registerPostCommitHook(func(ctx context.Context) error {
			return h.dispatcher.Dispatch(ctx, events)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Transaction recorded",
		zap.Int64("transaction_id", tx.ID),
		zap.Int64("customer_id", tx.CustomerID),
		zap.String("amount", tx.Amount.String()))

	return NewCreateTransactionCommandResult(tx.ToInfo()), nil
}

// resolveCustomer หาด้วย id ก่อน ถ้าไม่เจอค่อยหาด้วย email
func (h *createTransactionCommandHandler) resolveCustomer(ctx context.Context, cmd *CreateTransactionCommand) (*customercontract.CustomerInfo, error) {
	if cmd.CustomerID != nil {
		res, err := mediator.Send[*customercontract.GetCustomerByIDQuery, *customercontract.GetCustomerByIDQueryResult](
			ctx,
			&customercontract.GetCustomerByIDQuery{ID: *cmd.CustomerID},
		)
		if err == nil {
			return &res.CustomerInfo, nil
		}
		if errs.GetErrorType(err) != errs.ErrTypeResourceNotFound {
			return nil, err
		}
	}

	if cmd.CustomerEmail != "" {
		res, err := mediator.Send[*customercontract.GetCustomerByEmailQuery, *customercontract.GetCustomerByEmailQueryResult](
			ctx,
			&customercontract.GetCustomerByEmailQuery{Email: cmd.CustomerEmail},
		)
		if err == nil {
			return &res.CustomerInfo, nil
		}
		if errs.GetErrorType(err) != errs.ErrTypeResourceNotFound {
			return nil, err
		}
	}

	return nil, domainerrors.ErrCustomerNotRegistered
}
