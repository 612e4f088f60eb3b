package entities

import (
	"time"

	"gearguard/pkg/types"
)

// Request — заявка на обслуживание (work order).
type Request struct {
	ID             uint64     `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Description    *string    `json:"description" db:"description"`
	EquipmentID    *uint64    `json:"equipment_id" db:"equipment_id"`
	TechnicianID   uint64     `json:"technician_id" db:"technician_id"`
	TeamID         *uint64    `json:"team_id" db:"team_id"`
	Status         string     `json:"status" db:"status"`
	Type           string     `json:"type" db:"type"`
	Priority       string     `json:"priority" db:"priority"`
	ScheduledDate  *time.Time `json:"scheduled_date" db:"scheduled_date"`
	DueDate        *time.Time `json:"due_date" db:"due_date"`
	CompletedDate  *time.Time `json:"completed_date" db:"completed_date"`
	EstimatedHours *float64   `json:"estimated_hours" db:"estimated_hours"`
	ActualHours    *float64   `json:"actual_hours" db:"actual_hours"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	EquipmentName  *string `json:"equipment_name,omitempty" db:"-"`
	TechnicianName *string `json:"technician_name,omitempty" db:"-"`
	TeamName       *string `json:"team_name,omitempty" db:"-"`
}
