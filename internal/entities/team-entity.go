package entities

import (
	"gearguard/pkg/types"
)

type Team struct {
	ID          uint64  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Department  *string `json:"department" db:"department"`
	Company     *string `json:"company" db:"company"`
	Description *string `json:"description" db:"description"`

	types.BaseEntity

	// Поля для связанных данных (не колонки в таблице)
	MemberCount int `json:"member_count" db:"-"`
}
