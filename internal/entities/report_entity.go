package entities

import (
	"database/sql"
	"time"
)

// ReportFilter — параметры выборки для выгрузки реестра заявок.
type ReportFilter struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	TeamIDs       []uint64
	TechnicianIDs []uint64
	Types         []string
	Statuses      []string
	Priorities    []string
}

// ReportItem — строка реестра заявок для Excel-выгрузки.
type ReportItem struct {
	RequestID      uint64
	Title          string
	Type           string
	Priority       string
	Status         string
	EquipmentName  sql.NullString
	TeamName       sql.NullString
	TechnicianName sql.NullString
	ScheduledDate  sql.NullTime
	DueDate        sql.NullTime
	CompletedDate  sql.NullTime
	EstimatedHours sql.NullFloat64
	ActualHours    sql.NullFloat64
	CreatedAt      time.Time
}
