package dto

type CreateTeamDTO struct {
	Name        string  `json:"name" validate:"required"`
	Department  *string `json:"department" validate:"omitempty"`
	Company     *string `json:"company" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
}

type UpdateTeamDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Department  *string `json:"department,omitempty" validate:"omitempty"`
	Company     *string `json:"company,omitempty" validate:"omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty"`
}

type TeamDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Department  *string `json:"department"`
	Company     *string `json:"company"`
	Description *string `json:"description"`
	MemberCount int     `json:"member_count"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ShortTeamDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
