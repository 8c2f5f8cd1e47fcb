package calculate

import (
	"fmt"
	"go-rewards/modules/reward/domainerrors"
	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/errs"
	"go-rewards/shared/common/mediator"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.opentelemetry.io/otel/trace"
)

func NewEndpoint(router fiber.Router, path string) {
	router.Get(path, calculateRewardsHTTPHandler)
}

// CalculateRewards godoc
// @Summary		Calculate Rewards
// @Description	Reward points of a customer grouped by month, window is either months back from today or from/to (inclusive)
// @Tags			Reward
// @Produce		json
// @Param			id		path	int		true	"customer id"
// @Param			months	query	int		false	"months back from today"
// @Param			from	query	string	false	"start date YYYY-MM-DD"
// @Param			to		query	string	false	"end date YYYY-MM-DD"
// @Failure		400
// @Failure		404
// @Failure		422
// @Failure		500
// @Success		200	{object}	CalculateRewardsQueryResult
// @Router			/rewards/customer/{id} [get]
func calculateRewardsHTTPHandler(c fiber.Ctx) error {
	ctx := c.Context()
	tracer := trace.SpanFromContext(ctx).TracerProvider().Tracer("http_handler")
	ctx, span := tracer.Start(ctx, "Endpoint:CalculateRewards")
	defer span.End()

	customerID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return errs.BadRequestError("invalid customer id")
	}

	query, err := parseWindow(c)
	if err != nil {
		return err
	}
	query.CustomerID = customerID

	if err := rewards.ValidateWindow(query.Months, query.From, query.To); err != nil {
		return err
	}

	resp, err := mediator.Send[*CalculateRewardsQuery, *CalculateRewardsQueryResult](ctx, query)
	if err != nil {
		return err
	}

	if resp.IsEmpty() {
		return domainerrors.ErrNoRewardsFound
	}

	return c.JSON(resp)
}

// parseWindow อ่าน months, from, to จาก query string ค่าที่ไม่ได้ส่งมาจะเป็น nil
func parseWindow(c fiber.Ctx) (*CalculateRewardsQuery, error) {
	q := &CalculateRewardsQuery{}

	if raw := c.Query("months"); raw != "" {
		months, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errs.BadRequestError(fmt.Sprintf("months: cannot parse %q as integer", raw))
		}
		q.Months = &months
	}

	var err error
	if q.From, err = parseDateParam(c, "from"); err != nil {
		return nil, err
	}
	if q.To, err = parseDateParam(c, "to"); err != nil {
		return nil, err
	}
	return q, nil
}

func parseDateParam(c fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, errs.BadRequestError(fmt.Sprintf("%s: cannot parse %q, expected YYYY-MM-DD", name, raw))
	}
	return &d, nil
}
