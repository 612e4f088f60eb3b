package constants

// --- СТАТУСЫ ЗАЯВОК НА ОБСЛУЖИВАНИЕ (хранятся в БД как текст) ---
const (
	RequestStatusNew         = "NEW_REQUEST"
	RequestStatusInProgress  = "IN_PROGRESS"
	RequestStatusUnderReview = "UNDER_REVIEW"
	RequestStatusCompleted   = "COMPLETED"
	RequestStatusCancelled   = "CANCELLED"
)

// Финальные статусы: заявка в них не считается просроченной.
var FinalRequestStatuses = []string{
	RequestStatusCompleted,
	RequestStatusCancelled,
}

func IsFinalRequestStatus(code string) bool {
	for _, s := range FinalRequestStatuses {
		if s == code {
			return true
		}
	}
	return false
}

var KnownRequestStatuses = []string{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusUnderReview,
	RequestStatusCompleted,
	RequestStatusCancelled,
}

func IsKnownRequestStatus(code string) bool {
	for _, s := range KnownRequestStatuses {
		if s == code {
			return true
		}
	}
	return false
}

// --- ТИПЫ ЗАЯВОК ---
const (
	RequestTypeCorrective = "CORRECTIVE"
	RequestTypePreventive = "PREVENTIVE"
)

// --- ПРИОРИТЕТЫ ---
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Значения по умолчанию для новых заявок.
// Применяются только в фабрике заявки (RequestService), а не в каждом обработчике.
const (
	DefaultRequestStatus   = RequestStatusNew
	DefaultRequestType     = RequestTypeCorrective
	DefaultRequestPriority = PriorityMedium
)
