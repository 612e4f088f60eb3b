package entities

import (
	"time"

	"gearguard/pkg/types"
)

type TeamMember struct {
	ID          uint64     `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Email       string     `json:"email" db:"email"`
	Phone       *string    `json:"phone" db:"phone"`
	Position    *string    `json:"position" db:"position"`
	EmployeeID  *string    `json:"employee_id" db:"employee_id"`
	Status      string     `json:"status" db:"status"`
	JoiningDate *time.Time `json:"joining_date" db:"joining_date"`
	TeamID      uint64     `json:"team_id" db:"team_id"`

	types.BaseEntity

	// Не колонка: имя команды из JOIN
	TeamName *string `json:"team_name,omitempty" db:"-"`
}
