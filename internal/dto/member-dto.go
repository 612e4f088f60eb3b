package dto

type CreateMemberDTO struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone" validate:"omitempty,phone10"`
	Position    *string `json:"position" validate:"omitempty"`
	TeamID      uint64  `json:"team_id" validate:"required,gt=0"`
	EmployeeID  *string `json:"employee_id" validate:"omitempty,employee_code"`
	JoiningDate *string `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateMemberDTO struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone10"`
	Position    *string `json:"position,omitempty" validate:"omitempty"`
	TeamID      *uint64 `json:"team_id,omitempty" validate:"omitempty,gt=0"`
	EmployeeID  *string `json:"employee_id,omitempty" validate:"omitempty,employee_code"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive on-leave"`
	JoiningDate *string `json:"joining_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type MemberDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Position    *string `json:"position"`
	EmployeeID  *string `json:"employee_id"`
	Status      string  `json:"status"`
	JoiningDate *string `json:"joining_date"`
	TeamID      uint64  `json:"team_id"`
	TeamName    *string `json:"team,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ShortMemberDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// NextEmployeeCodeDTO — подсказка табельного кода для формы добавления сотрудника.
type NextEmployeeCodeDTO struct {
	EmployeeID string `json:"employee_id"`
}
