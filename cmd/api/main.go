package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-rewards/application"
	"go-rewards/build"
	"go-rewards/config"
	"go-rewards/modules/customer"
	"go-rewards/modules/notification"
	"go-rewards/modules/reward"
	"go-rewards/modules/transaction"
	"go-rewards/shared/common/idgen"
	"go-rewards/shared/common/logger"
	"go-rewards/shared/common/module"
	"go-rewards/shared/common/observability"
	"go-rewards/shared/common/storage/sqldb"
	"go-rewards/shared/common/storage/sqldb/transactor"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	config, err := config.Load()
	if err != nil {
		panic(err.Error())
	}

	if config.Rewards.BonusBelowPoints() {
		logger.Log().Warn("minAmtSpendForBonus is lower than minAmtSpendForPoints, bonus tier points will be reduced",
			zap.Int("minAmtSpendForPoints", config.Rewards.PointsFloor),
			zap.Int("minAmtSpendForBonus", config.Rewards.BonusFloor))
	}

	if err := idgen.Init(config.NodeID); err != nil {
		panic(err.Error())
	}

	// ให้ยอดเงินออกมาเป็น number ใน JSON ไม่ใช่ string
	decimal.MarshalJSONWithoutQuotes = true

	shutdownOtel, err := observability.InitOtlp(context.Background(), config.OtelCollectorAddr, config.ServiceName, build.Version)
	if err != nil {
		panic(err.Error())
	}
	defer func() {
		if err := shutdownOtel(context.Background()); err != nil {
			logger.Log().Error(fmt.Sprintf("Error shutting down otel: %v", err))
		}
	}()

	dbCtx, closeDB, err := sqldb.NewDBContext(config.DSN)
	if err != nil {
		panic(err.Error())
	}
	defer func() { // ใช่ท่า IIFE เพราะต้องการแสดง error ถ้าปิดไม่ได้
		if err := closeDB(); err != nil {
			logger.Log().Error(fmt.Sprintf("Error closing database: %v", err))
		}
	}()

	app := application.New(*config)
	app.AddHealthCheck("database", dbCtx.DB().PingContext)

	transactor, dbtxCtx := transactor.New(dbCtx.DB(),
		transactor.WithNestedTransactionStrategy(transactor.NestedTransactionsSavepoints))
	mCtx := module.NewModuleContext(transactor, dbtxCtx)

	err = app.RegisterModules(
		notification.NewModule(),
		customer.NewModule(mCtx),
		transaction.NewModule(mCtx),
		reward.NewModule(config.Rewards),
	)
	if err != nil {
		panic(err.Error())
	}

	app.Run()

	// รอสัญญาณการปิด
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log().Info("Shutting down...")

	if err := app.Shutdown(); err != nil {
		logger.Log().Error(err.Error())
	}

	logger.Log().Info("Shutdown complete.")
}
