package rewards

import "github.com/shopspring/decimal"

// Points คิดแต้มของยอดซื้อหนึ่งรายการ ยอดถูกตัดเศษทิ้ง (ไม่ปัด) ก่อนคำนวณ
//
//	amount > BonusFloor:  (amount - BonusFloor) * Multiplier + (BonusFloor - PointsFloor)
//	amount > PointsFloor: amount - PointsFloor
//	อื่นๆ:                0
func Points(amount *decimal.Decimal, t Thresholds) int {
	if amount == nil {
		return 0
	}

	spent := int(amount.IntPart())

	if spent > t.BonusFloor {
		bonus := (spent - t.BonusFloor) * t.Multiplier
		regular := t.BonusFloor - t.PointsFloor
		return bonus + regular
	}

	if spent > t.PointsFloor {
		return spent - t.PointsFloor
	}

	return 0
}
