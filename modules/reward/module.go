package reward

import (
	"go-rewards/modules/reward/internal/feature/calculate"
	"go-rewards/modules/reward/rewards"
	"go-rewards/shared/common/eventbus"
	"go-rewards/shared/common/mediator"
	"go-rewards/shared/common/module"
	"go-rewards/shared/common/registry"

	"github.com/gofiber/fiber/v3"
)

// NewModule โมดูลนี้ไม่มีตารางของตัวเอง อ่านข้อมูลผ่าน contract ของ customer และ transaction
func NewModule(thresholds rewards.Thresholds) module.Module {
	return &moduleImp{thresholds: thresholds}
}

type moduleImp struct {
	thresholds rewards.Thresholds
}

func (m *moduleImp) Name() string {
	return "reward"
}

func (m *moduleImp) Init(reg registry.ServiceRegistry, eventBus eventbus.EventBus) error {
	mediator.Register(calculate.NewCalculateRewardsQueryHandler(m.thresholds))
	return nil
}

func (m *moduleImp) RegisterRoutes(router fiber.Router) {
	rewardsGroup := router.Group("/rewards")
	calculate.NewEndpoint(rewardsGroup, "/customer/:id")
}
