package rewards

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeFloor    = errors.New("spend floors must not be negative")
	ErrMultiplierTooLow = errors.New("multiplier must be at least 1")
	DefaultThresholds   = Thresholds{PointsFloor: 50, BonusFloor: 100, Multiplier: 2}
)

// Thresholds คือค่าตั้งต้นของการคิดแต้ม โหลดครั้งเดียวตอนเริ่ม process แล้วส่งต่อเป็น value
type Thresholds struct {
	PointsFloor int `yaml:"minAmtSpendForPoints"` // ใช้จ่ายไม่เกินนี้ไม่ได้แต้ม
	BonusFloor  int `yaml:"minAmtSpendForBonus"`  // ใช้จ่ายเกินนี้ได้แต้มคูณ
	Multiplier  int `yaml:"multiplier"`
}

func (t Thresholds) Validate() error {
	if t.PointsFloor < 0 || t.BonusFloor < 0 {
		return fmt.Errorf("%w: minAmtSpendForPoints=%d minAmtSpendForBonus=%d", ErrNegativeFloor, t.PointsFloor, t.BonusFloor)
	}
	if t.Multiplier < 1 {
		return fmt.Errorf("%w: multiplier=%d", ErrMultiplierTooLow, t.Multiplier)
	}
	return nil
}

// BonusBelowPoints บอกว่า bonus floor ต่ำกว่า points floor หรือไม่
// กรณีนี้แต้มช่วง bonus จะถูกหักด้วยผลต่างที่ติดลบ
func (t Thresholds) BonusBelowPoints() bool {
	return t.BonusFloor < t.PointsFloor
}
