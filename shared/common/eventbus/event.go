package eventbus

import (
	"time"

	"github.com/google/uuid"
)

// EventName เป็นชนิดข้อมูลสำหรับชื่อ integration event
type EventName string

// Event คือ integration event ที่ส่งข้ามโมดูล
type Event interface {
	EventID() string
	EventName() EventName
	OccurredAt() time.Time
}

type BaseEvent struct {
	ID   string
	Name EventName
	At   time.Time
}

// NewBaseEvent สร้าง BaseEvent พร้อม id แบบ UUID และเวลาปัจจุบัน
func NewBaseEvent(name EventName) BaseEvent {
	return BaseEvent{
		ID:   uuid.NewString(),
		Name: name,
		At:   time.Now(),
	}
}

func (e BaseEvent) EventID() string {
	return e.ID
}

func (e BaseEvent) EventName() EventName {
	return e.Name
}

func (e BaseEvent) OccurredAt() time.Time {
	return e.At
}
