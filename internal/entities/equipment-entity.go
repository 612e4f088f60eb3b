package entities

import (
	"time"

	"gearguard/pkg/types"
)

type Equipment struct {
	ID                uint64     `json:"id" db:"id"`
	Name              string     `json:"name" db:"name"`
	Category          *string    `json:"category" db:"category"`
	Company           *string    `json:"company" db:"company"`
	Status            string     `json:"status" db:"status"`
	Location          *string    `json:"location" db:"location"`
	UsedInLocation    *string    `json:"used_in_location" db:"used_in_location"`
	WorkCenter        *string    `json:"work_center" db:"work_center"`
	Description       *string    `json:"description" db:"description"`
	MaintenanceTeamID *uint64    `json:"maintenance_team_id" db:"maintenance_team_id"`
	TechnicianID      *uint64    `json:"technician_id" db:"technician_id"`
	AssignedDate      *time.Time `json:"assigned_date" db:"assigned_date"`
	ScrapDate         *time.Time `json:"scrap_date" db:"scrap_date"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	MaintenanceTeamName *string `json:"maintenance_team_name,omitempty" db:"-"`
	TechnicianName      *string `json:"technician_name,omitempty" db:"-"`
}
