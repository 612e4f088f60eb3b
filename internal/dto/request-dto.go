package dto

import "github.com/aarondl/null/v8"

type CreateRequestDTO struct {
	Title          string      `json:"title" validate:"required"`
	Description    *string     `json:"description" validate:"omitempty"`
	TechnicianID   uint64      `json:"technician_id" validate:"required,gt=0"`
	EquipmentID    null.Uint64 `json:"equipment_id"`
	Type           *string     `json:"type" validate:"omitempty,oneof=CORRECTIVE PREVENTIVE"`
	Priority       *string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status         *string     `json:"status" validate:"omitempty"`
	ScheduledDate  *string     `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string     `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64    `json:"estimated_hours" validate:"omitempty,gte=0"`
}

type UpdateRequestDTO struct {
	Title          *string     `json:"title,omitempty" validate:"omitempty,min=1"`
	Description    *string     `json:"description,omitempty" validate:"omitempty"`
	TechnicianID   *uint64     `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	EquipmentID    null.Uint64 `json:"equipment_id,omitempty"`
	TeamID         null.Uint64 `json:"team_id,omitempty"`
	Type           *string     `json:"type,omitempty" validate:"omitempty,oneof=CORRECTIVE PREVENTIVE"`
	Priority       *string     `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status         *string     `json:"status,omitempty" validate:"omitempty"`
	ScheduledDate  *string     `json:"scheduled_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate        *string     `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CompletedDate  *string     `json:"completed_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64    `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	ActualHours    *float64    `json:"actual_hours,omitempty" validate:"omitempty,gte=0"`
}

// MoveRequestDTO — перенос карточки на канбане (смена статуса).
type MoveRequestDTO struct {
	TaskID    uint64 `json:"taskId" validate:"required,gt=0"`
	NewStatus string `json:"newStatus" validate:"required"`
}

type RequestDTO struct {
	ID             uint64   `json:"id"`
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	EquipmentID    *uint64  `json:"equipment_id"`
	EquipmentName  *string  `json:"equipment_name"`
	TechnicianID   uint64   `json:"technician_id"`
	TechnicianName *string  `json:"technician_name"`
	TeamID         *uint64  `json:"team_id"`
	TeamName       *string  `json:"team_name"`
	Status         string   `json:"status"`
	Type           string   `json:"type"`
	Priority       string   `json:"priority"`
	ScheduledDate  *string  `json:"scheduled_date"`
	DueDate        *string  `json:"due_date"`
	CompletedDate  *string  `json:"completed_date"`
	EstimatedHours *float64 `json:"estimated_hours"`
	ActualHours    *float64 `json:"actual_hours"`
	IsOverdue      bool     `json:"is_overdue"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// KanbanTaskDTO — проекция заявки для канбан-доски.
// Форма зафиксирована фронтендом: {id, title, status, type, dueDate}.
type KanbanTaskDTO struct {
	ID      uint64  `json:"id"`
	Title   string  `json:"title"`
	Status  string  `json:"status"`
	Type    string  `json:"type"`
	DueDate *string `json:"dueDate"`
}

// CalendarRequestDTO — полная проекция заявки для календаря и внешнего API.
// Все даты — ISO-8601, отсутствующие значения — null.
type CalendarRequestDTO struct {
	ID             uint64  `json:"id"`
	Title          string  `json:"title"`
	Description    *string `json:"description"`
	EquipmentID    *uint64 `json:"equipment_id"`
	EquipmentName  *string `json:"equipment_name"`
	Status         string  `json:"status"`
	Type           string  `json:"type"`
	Priority       string  `json:"priority"`
	DueDate        *string `json:"dueDate"`
	ScheduledDate  *string `json:"scheduledDate"`
	TechnicianID   uint64  `json:"technicianId"`
	TechnicianName *string `json:"technicianName"`
	TeamID         *uint64 `json:"teamId"`
	TeamName       *string `json:"teamName"`
	IsOverdue      bool    `json:"isOverdue"`
	CreatedAt      string  `json:"createdAt"`
}

type CreateHistoryDTO struct {
	Note string `json:"note" validate:"required"`
}

type HistoryDTO struct {
	ID         uint64 `json:"id"`
	RequestID  uint64 `json:"request_id"`
	Note       string `json:"note"`
	RecordedAt string `json:"recorded_at"`
}
