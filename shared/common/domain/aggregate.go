package domain

// Aggregate เป็น struct พื้นฐานสำหรับ aggregate root
// ใช้เก็บ domain events ที่เกิดขึ้นระหว่างทำงาน แล้วค่อยดึงออกไป dispatch หลัง commit
type Aggregate struct {
	domainEvents []DomainEvent
}

func (a *Aggregate) AddDomainEvent(dv DomainEvent) {
	a.domainEvents = append(a.domainEvents, dv)
}

// PullDomainEvents ดึง events ทั้งหมดออกแล้วเคลียร์ทิ้ง เพื่อไม่ให้ส่งซ้ำ
func (a *Aggregate) PullDomainEvents() []DomainEvent {
	events := a.domainEvents
	a.domainEvents = nil
	return events
}
