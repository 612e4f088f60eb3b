package entities

import "time"

// MaintenanceHistory — запись журнала обслуживания по заявке.
// Ядро никогда не создаёт такие записи само: их пишут внешние участники.
type MaintenanceHistory struct {
	ID         uint64    `json:"id" db:"id"`
	RequestID  uint64    `json:"request_id" db:"request_id"`
	Note       string    `json:"note" db:"note"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}
