package domainerrors

import "go-rewards/shared/common/errs"

var (
	// ผลคำนวณไม่มีรายการและแต้มรวมเป็น 0 ถือว่าไม่พบ แยกจากกรณีไม่พบลูกค้า
	ErrNoRewardsFound = errs.ResourceNotFoundError("No rewards found")
)
