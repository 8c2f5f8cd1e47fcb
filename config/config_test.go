package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-rewards/modules/reward/rewards"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rewards")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.HTTPPort)
	assert.Equal(t, 5*time.Second, cfg.GracefulTimeout)
	assert.Equal(t, "/api", cfg.GatewayBasePath)
	assert.Equal(t, "go-rewards", cfg.ServiceName)
	assert.Equal(t, int64(1), cfg.NodeID)
	assert.Equal(t, rewards.DefaultThresholds, cfg.Rewards)
}

func TestLoadMissingDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrDSN)
}

func TestLoadRewardsFromEnv(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rewards")
	t.Setenv("REWARDS_MIN_AMT_SPEND_FOR_POINTS", "25")
	t.Setenv("REWARDS_MIN_AMT_SPEND_FOR_BONUS", "75")
	t.Setenv("REWARDS_MULTIPLIER", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, rewards.Thresholds{PointsFloor: 25, BonusFloor: 75, Multiplier: 3}, cfg.Rewards)
}

func TestLoadRewardsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minAmtSpendForPoints: 10\nminAmtSpendForBonus: 200\nmultiplier: 4\n"), 0o600))

	t.Setenv("DB_DSN", "postgres://localhost/rewards")
	t.Setenv("REWARDS_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, rewards.Thresholds{PointsFloor: 10, BonusFloor: 200, Multiplier: 4}, cfg.Rewards)

	// env ทับค่าในไฟล์
	t.Setenv("REWARDS_MULTIPLIER", "5")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Rewards.Multiplier)
	assert.Equal(t, 200, cfg.Rewards.BonusFloor)
}

func TestLoadRewardsFileErrors(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rewards")

	t.Setenv("REWARDS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("multiplier: [not, a, number]\n"), 0o600))
	t.Setenv("REWARDS_CONFIG_FILE", bad)
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadInvalidRewards(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rewards")

	t.Setenv("REWARDS_MULTIPLIER", "0")
	_, err := Load()
	assert.ErrorIs(t, err, ErrRewards)
	assert.ErrorIs(t, err, rewards.ErrMultiplierTooLow)

	t.Setenv("REWARDS_MULTIPLIER", "2")
	t.Setenv("REWARDS_MIN_AMT_SPEND_FOR_POINTS", "-1")
	_, err = Load()
	assert.ErrorIs(t, err, rewards.ErrNegativeFloor)
}

func TestLoadMalformedRewardsEnv(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"REWARDS_MULTIPLIER", "3x"},
		{"REWARDS_MIN_AMT_SPEND_FOR_POINTS", "fifty"},
		{"REWARDS_MIN_AMT_SPEND_FOR_BONUS", "one-hundred-fifty"},
		{"REWARDS_MULTIPLIER", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("DB_DSN", "postgres://localhost/rewards")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrRewards)
			assert.ErrorContains(t, err, tt.key)
		})
	}
}

func TestLoadAllowsBonusBelowPoints(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/rewards")
	t.Setenv("REWARDS_MIN_AMT_SPEND_FOR_POINTS", "100")
	t.Setenv("REWARDS_MIN_AMT_SPEND_FOR_BONUS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Rewards.BonusBelowPoints())
}

func TestValidate(t *testing.T) {
	valid := Config{HTTPPort: 8090, GracefulTimeout: time.Second, DSN: "x", NodeID: 1, Rewards: rewards.DefaultThresholds}
	assert.NoError(t, valid.Validate())

	c := valid
	c.HTTPPort = 0
	assert.ErrorIs(t, c.Validate(), ErrInvalidHTTPPort)

	c = valid
	c.GracefulTimeout = 0
	assert.ErrorIs(t, c.Validate(), ErrGracefulTimeout)

	c = valid
	c.NodeID = 1024
	assert.ErrorIs(t, c.Validate(), ErrNodeID)
}
