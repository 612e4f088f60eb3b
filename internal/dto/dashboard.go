package dto

// DashboardStatsDTO — сводка для главной страницы.
type DashboardStatsDTO struct {
	TotalTeams     int `json:"total_teams"`
	TotalMembers   int `json:"total_members"`
	ActiveMembers  int `json:"active_members"`
	TotalEquipment int `json:"total_equipment"`
	TotalRequests  int `json:"total_requests"`

	PendingRequests    int `json:"pending_requests"`
	OverdueRequests    int `json:"overdue_requests"`
	CorrectiveRequests int `json:"corrective_requests"`
	PreventiveRequests int `json:"preventive_requests"`

	// Нагрузка техников: 0..100, процент от min(pending/active*100, 100).
	TechnicianLoad int `json:"technician_load"`

	EquipmentByStatus []EquipmentStatusCountDTO `json:"equipment_by_status"`

	RecentRequests []RequestDTO     `json:"recent_requests"`
	RecentTeams    []TeamDTO        `json:"recent_teams"`
	Technicians    []ShortMemberDTO `json:"technicians"`
}

// TechnicianListDTO — список техников для выпадающего списка календаря.
type TechnicianListDTO struct {
	Technicians []ShortMemberDTO `json:"technicians"`
}
