package dto

import "github.com/aarondl/null/v8"

type CreateEquipmentDTO struct {
	Name              string      `json:"name" validate:"required"`
	Category          *string     `json:"category" validate:"omitempty"`
	Company           *string     `json:"company" validate:"omitempty"`
	Status            *string     `json:"status" validate:"omitempty"`
	Location          *string     `json:"location" validate:"omitempty"`
	UsedInLocation    *string     `json:"used_in_location" validate:"omitempty"`
	WorkCenter        *string     `json:"work_center" validate:"omitempty"`
	Description       *string     `json:"description" validate:"omitempty"`
	MaintenanceTeamID null.Uint64 `json:"maintenance_team_id"`
	TechnicianID      null.Uint64 `json:"technician_id"`
	AssignedDate      *string     `json:"assigned_date" validate:"omitempty,datetime=2006-01-02"`
	ScrapDate         *string     `json:"scrap_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateEquipmentDTO struct {
	Name              *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Category          *string     `json:"category,omitempty" validate:"omitempty"`
	Company           *string     `json:"company,omitempty" validate:"omitempty"`
	Status            *string     `json:"status,omitempty" validate:"omitempty"`
	Location          *string     `json:"location,omitempty" validate:"omitempty"`
	UsedInLocation    *string     `json:"used_in_location,omitempty" validate:"omitempty"`
	WorkCenter        *string     `json:"work_center,omitempty" validate:"omitempty"`
	Description       *string     `json:"description,omitempty" validate:"omitempty"`
	MaintenanceTeamID null.Uint64 `json:"maintenance_team_id,omitempty"`
	TechnicianID      null.Uint64 `json:"technician_id,omitempty"`
	AssignedDate      *string     `json:"assigned_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ScrapDate         *string     `json:"scrap_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type EquipmentDTO struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	Category          *string `json:"category"`
	Company           *string `json:"company"`
	Status            string  `json:"status"`
	Location          *string `json:"location"`
	UsedInLocation    *string `json:"used_in_location"`
	WorkCenter        *string `json:"work_center"`
	Description       *string `json:"description"`
	MaintenanceTeamID *uint64 `json:"maintenance_team_id"`
	MaintenanceTeam   *string `json:"maintenance_team,omitempty"`
	TechnicianID      *uint64 `json:"technician_id"`
	Technician        *string `json:"technician,omitempty"`
	AssignedDate      *string `json:"assigned_date"`
	ScrapDate         *string `json:"scrap_date"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ShortEquipmentDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// EquipmentStatusCountDTO — количество единиц оборудования по статусу.
type EquipmentStatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
