package rewards

import (
	"time"

	"go-rewards/shared/common/errs"
)

var (
	ErrBothWindowModes   = errs.InputValidationError("Provide either 'months' OR ('from' and 'to'), not both.")
	ErrMonthsNotPositive = errs.InputValidationError("'months' must be greater than 0")
	ErrFromAfterTo       = errs.InputValidationError("'from' date cannot be after 'to' date")
	ErrIncompleteRange   = errs.InputValidationError("Provide both 'from' and 'to'")
)

// DateRange เป็นช่วงวันที่แบบรวมปลายทั้งสองด้าน
type DateRange struct {
	From time.Time
	To   time.Time
}

// ValidateWindow ตรวจว่าเลือกได้แค่แบบเดียวระหว่าง months กับ from/to
func ValidateWindow(months *int, from, to *time.Time) error {
	if months != nil && (from != nil || to != nil) {
		return ErrBothWindowModes
	}
	if months != nil && *months <= 0 {
		return ErrMonthsNotPositive
	}
	if (from == nil) != (to == nil) {
		return ErrIncompleteRange
	}
	if from != nil && from.After(*to) {
		return ErrFromAfterTo
	}
	return nil
}

// ResolveRange แปลง input เป็นช่วงวันที่จริง ต้องผ่าน ValidateWindow มาก่อน
//
// months: To = วันนี้, From = วันนี้ย้อนไป months เดือน
// from/to: ใช้ตามที่ส่งมา
// ไม่ระบุอะไร: ok = false ไม่มีช่วงให้ค้น ผลลัพธ์จะว่าง
func ResolveRange(now time.Time, months *int, from, to *time.Time) (r DateRange, ok bool) {
	switch {
	case from != nil && to != nil:
		return DateRange{From: dateOf(*from), To: dateOf(*to)}, true
	case months != nil:
		today := dateOf(now)
		return DateRange{From: MinusMonths(today, *months), To: today}, true
	}
	return DateRange{}, false
}

// MinusMonths ลบเดือนแบบปฏิทิน ถ้าวันที่เดิมเกินจำนวนวันของเดือนปลายทางจะใช้วันสุดท้ายของเดือน
// เช่น 2025-03-31 ลบ 1 เดือน = 2025-02-28
func MinusMonths(d time.Time, n int) time.Time {
	y, m, day := d.Date()
	idx := y*12 + int(m-1) - n
	ny, nm := floorDiv(idx, 12), time.Month(idx-floorDiv(idx, 12)*12+1)

	if last := daysIn(ny, nm); day > last {
		day = last
	}
	return time.Date(ny, nm, day, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
