package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOtlpWithoutCollectorIsNoop(t *testing.T) {
	shutdown, err := InitOtlp(context.Background(), "", "go-rewards", "test")
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
