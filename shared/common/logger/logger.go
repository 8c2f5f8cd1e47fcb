package logger

import (
	"context"

	"go.elastic.co/ecszap"
	"go.uber.org/zap"
)

type closeLog func() error

var baseLogger = zap.NewNop()

func Init() (closeLog, error) {
	config := zap.NewDevelopmentConfig()
	// ใช้ encoder แบบ ECS เพื่อส่ง log เข้า Elastic Stack ได้ทันที
	config.EncoderConfig = ecszap.ECSCompatibleEncoderConfig(config.EncoderConfig)

	l, err := config.Build(ecszap.WrapCoreOption())
	if err != nil {
		return nil, err
	}
	baseLogger = l

	return func() error {
		return baseLogger.Sync()
	}, nil
}

// Log คืน logger หลักของระบบ (ก่อนเรียก Init จะเป็น no-op logger)
func Log() *zap.Logger {
	return baseLogger
}

func With(fields ...zap.Field) *zap.Logger {
	return baseLogger.With(fields...)
}

type loggerKey struct{}

func NewContext(parent context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(parent, loggerKey{}, logger)
}

// FromContext ดึง logger ของ request ออกจาก context ถ้าไม่มีใช้ logger หลัก
func FromContext(ctx context.Context) *zap.Logger {
	log, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if ok {
		return log
	}
	return baseLogger
}
