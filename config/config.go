package config

import (
	"errors"
	"fmt"
	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/env"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidHTTPPort = errors.New("HTTP_PORT must be a positive integer")
	ErrGracefulTimeout = errors.New("GRACEFUL_TIMEOUT must be a positive duration")
	ErrDSN             = errors.New("DB_DSN must be set")
	ErrNodeID          = errors.New("NODE_ID must be between 0 and 1023")
	ErrRewards         = errors.New("invalid rewards thresholds")
)

// รวมการโหลดค่าคอนฟิกทั้งหมดไว้ในจุดเดียว
type Config struct {
	HTTPPort          int
	GracefulTimeout   time.Duration
	DSN               string
	GatewayHost       string
	GatewayBasePath   string
	OtelCollectorAddr string
	ServiceName       string
	NodeID            int64
	RewardsConfigFile string
	Rewards           rewards.Thresholds
}

// Load อ่านค่าจาก env ส่วน thresholds ใช้ค่า default ก่อน ทับด้วยไฟล์ REWARDS_CONFIG_FILE (ถ้ามี) แล้วทับด้วย env อีกที
func Load() (*Config, error) {
	config := &Config{
		HTTPPort:          env.GetIntDefault("HTTP_PORT", 8090),
		GracefulTimeout:   env.GetDurationDefault("GRACEFUL_TIMEOUT", 5*time.Second),
		DSN:               env.Get("DB_DSN"),
		GatewayHost:       env.Get("GATEWAY_HOST"),
		GatewayBasePath:   env.GetDefault("GATEWAY_BASEURL", "/api"),
		OtelCollectorAddr: env.Get("OTEL_COLLECTOR_ADDR"),
		ServiceName:       env.GetDefault("SERVICE_NAME", "go-rewards"),
		NodeID:            env.GetInt64Default("NODE_ID", 1),
		RewardsConfigFile: env.Get("REWARDS_CONFIG_FILE"),
		Rewards:           rewards.DefaultThresholds,
	}

	if config.RewardsConfigFile != "" {
		if err := loadRewardsFile(config.RewardsConfigFile, &config.Rewards); err != nil {
			return nil, err
		}
	}

	// ค่าแต้มต้องอ่านได้ครบ ตั้งค่าผิดรูปแบบให้ล้มตั้งแต่ตอนโหลด
	overrides := []struct {
		key string
		dst *int
	}{
		{"REWARDS_MIN_AMT_SPEND_FOR_POINTS", &config.Rewards.PointsFloor},
		{"REWARDS_MIN_AMT_SPEND_FOR_BONUS", &config.Rewards.BonusFloor},
		{"REWARDS_MULTIPLIER", &config.Rewards.Multiplier},
	}
	for _, o := range overrides {
		v, ok, err := env.GetInt(o.key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRewards, err)
		}
		if ok {
			*o.dst = v
		}
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}
	return config, err
}

// ไฟล์ yaml ใช้ key เดียวกับ rewards.Thresholds เช่น
//
//	minAmtSpendForPoints: 50
//	minAmtSpendForBonus: 100
//	multiplier: 2
func loadRewardsFile(path string, t *rewards.Thresholds) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rewards config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, t); err != nil {
		return fmt.Errorf("parse rewards config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 {
		return ErrInvalidHTTPPort
	}
	if c.GracefulTimeout <= 0 {
		return ErrGracefulTimeout
	}
	if len(c.DSN) == 0 {
		return ErrDSN
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return ErrNodeID
	}
	if err := c.Rewards.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrRewards, err)
	}

	return nil
}
