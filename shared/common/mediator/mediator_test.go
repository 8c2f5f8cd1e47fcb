package mediator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingQuery struct{ Name string }
type pingResult struct{ Greeting string }

type unregisteredQuery struct{}

func TestSendDispatchesToRegisteredHandler(t *testing.T) {
	Register(HandlerFunc[*pingQuery, *pingResult](func(ctx context.Context, q *pingQuery) (*pingResult, error) {
		return &pingResult{Greeting: "hello " + q.Name}, nil
	}))

	res, err := Send[*pingQuery, *pingResult](context.Background(), &pingQuery{Name: "ann"})
	require.NoError(t, err)
	assert.Equal(t, "hello ann", res.Greeting)
}

func TestSendPropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	Register(HandlerFunc[*pingQuery, *pingResult](func(ctx context.Context, q *pingQuery) (*pingResult, error) {
		return nil, boom
	}))

	res, err := Send[*pingQuery, *pingResult](context.Background(), &pingQuery{})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
}

func TestSendWithoutHandler(t *testing.T) {
	_, err := Send[*unregisteredQuery, *NoResponse](context.Background(), &unregisteredQuery{})
	assert.ErrorContains(t, err, "no handler for request")
}

func TestSendWrongResponseType(t *testing.T) {
	Register(HandlerFunc[*pingQuery, *pingResult](func(ctx context.Context, q *pingQuery) (*pingResult, error) {
		return &pingResult{}, nil
	}))

	_, err := Send[*pingQuery, *NoResponse](context.Background(), &pingQuery{})
	assert.ErrorContains(t, err, "invalid response type")
}
