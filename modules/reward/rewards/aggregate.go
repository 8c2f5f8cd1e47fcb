package rewards

import (
	"bytes"
	"encoding/json"
	"time"
)

const monthKeyLayout = "2006-01"

type DatedPoints struct {
	Date   time.Time
	Points int
}

// MonthlyRewards เก็บแต้มรวมรายเดือน key เป็น "YYYY-MM" เรียงตามลำดับที่เจอครั้งแรก
type MonthlyRewards struct {
	keys   []string
	points map[string]int
}

func NewMonthlyRewards() *MonthlyRewards {
	return &MonthlyRewards{points: map[string]int{}}
}

func (m *MonthlyRewards) Add(month string, points int) {
	if _, ok := m.points[month]; !ok {
		m.keys = append(m.keys, month)
	}
	m.points[month] += points
}

func (m *MonthlyRewards) Months() []string {
	return append([]string(nil), m.keys...)
}

func (m *MonthlyRewards) Get(month string) (int, bool) {
	p, ok := m.points[month]
	return p, ok
}

func (m *MonthlyRewards) Len() int {
	return len(m.keys)
}

// MarshalJSON เขียนเป็น object ตามลำดับ key เดิม
func (m *MonthlyRewards) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.points[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregate รวมแต้มตามเดือนของวันที่ เดือนที่ไม่มีรายการจะไม่มี key
func Aggregate(items []DatedPoints) (*MonthlyRewards, int) {
	monthly := NewMonthlyRewards()
	total := 0
	for _, it := range items {
		monthly.Add(it.Date.Format(monthKeyLayout), it.Points)
		total += it.Points
	}
	return monthly, total
}
