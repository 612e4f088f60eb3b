// pkg/constants/constants.go
package constants

//============== СТАТУСЫ СОТРУДНИКОВ ==============

const (
	MemberStatusActive   = "active"
	MemberStatusInactive = "inactive"
	MemberStatusOnLeave  = "on-leave"
)

//============== СТАТУСЫ ОБОРУДОВАНИЯ ==============

// Статусы оборудования хранятся как свободный текст; эти коды — соглашение,
// по которому их группирует дашборд. Незнакомые значения не попадают ни в одну группу.
const (
	EquipmentStatusAvailable        = "available"
	EquipmentStatusInUse            = "in_use"
	EquipmentStatusUnderMaintenance = "under_maintenance"
	EquipmentStatusCritical         = "critical"
	EquipmentStatusRetired          = "retired"
)

//============== КЛЮЧИ КЭША ==============

// Префиксы для ключей в Redis.
const (
	// Список техников для выпадающего списка календаря.
	CacheKeyTechnicians = "dashboard:technicians"
)

//============== КОД СОТРУДНИКА ==============

// Формат табельного кода: EMP + число, дополненное нулями минимум до 4 цифр.
const EmployeeCodePrefix = "EMP"
