package seeders

// Демонстрационный набор данных: три команды, пять техников,
// пять единиц оборудования и пять заявок в разных статусах.

type teamData struct {
	Name        string
	Department  string
	Company     string
	Description string
}

var teamsData = []teamData{
	{Name: "Electrical Team", Department: "Maintenance", Company: "Adani", Description: "Handles all electrical equipment maintenance"},
	{Name: "Mechanical Team", Department: "Maintenance", Company: "Adani", Description: "Handles mechanical equipment"},
	{Name: "HVAC Team", Department: "Facilities", Company: "Adani", Description: "Heating, ventilation, and air conditioning"},
}

type memberData struct {
	EmployeeID  string
	Name        string
	Email       string
	Phone       string
	Position    string
	TeamName    string
	JoiningDate string
}

var membersData = []memberData{
	{EmployeeID: "EMP0001", Name: "Rajesh Kumar", Email: "rajesh.kumar@adani.com", Phone: "9876543210", Position: "Senior Technician", TeamName: "Electrical Team", JoiningDate: "2020-01-15"},
	{EmployeeID: "EMP0002", Name: "Priya Sharma", Email: "priya.sharma@adani.com", Phone: "9876543211", Position: "Technician", TeamName: "Electrical Team", JoiningDate: "2021-03-10"},
	{EmployeeID: "EMP0003", Name: "Amit Patel", Email: "amit.patel@adani.com", Phone: "9876543212", Position: "Lead Mechanic", TeamName: "Mechanical Team", JoiningDate: "2019-05-20"},
	{EmployeeID: "EMP0004", Name: "Sunita Verma", Email: "sunita.verma@adani.com", Phone: "9876543213", Position: "Mechanic", TeamName: "Mechanical Team", JoiningDate: "2022-02-01"},
	{EmployeeID: "EMP0005", Name: "Mohammed Ali", Email: "mohammed.ali@adani.com", Phone: "9876543214", Position: "HVAC Specialist", TeamName: "HVAC Team", JoiningDate: "2020-08-15"},
}

type equipmentData struct {
	Name           string
	Category       string
	Location       string
	Status         string
	Company        string
	UsedInLocation string
	WorkCenter     string
	Description    string
	TeamName       string
	TechnicianName string
}

var equipmentsData = []equipmentData{
	{
		Name: "CNC Machine #1", Category: "Manufacturing", Location: "Factory Floor A", Status: "in_use",
		Company: "Adani", UsedInLocation: "Factory Floor A", WorkCenter: "Production Line 1",
		Description: "Primary CNC machine for precision parts. Fanuc Robodrill α-D21MiB5",
		TeamName:    "Mechanical Team", TechnicianName: "Amit Patel",
	},
	{
		Name: "Transformer Unit #3", Category: "Electrical", Location: "Electrical Room B", Status: "available",
		Company:     "Adani",
		Description: "Backup transformer, 500 kVA capacity. ABB DTR-500kVA",
		TeamName:    "Electrical Team", TechnicianName: "Rajesh Kumar",
	},
	{
		Name: "HVAC Unit - Building C", Category: "HVAC", Location: "Building C Roof", Status: "under_maintenance",
		Company:     "Adani",
		Description: "Central air conditioning for Building C. Carrier AquaEdge 19DV",
		TeamName:    "HVAC Team", TechnicianName: "Mohammed Ali",
	},
	{
		Name: "Hydraulic Press", Category: "Manufacturing", Location: "Factory Floor B", Status: "available",
		Company: "Adani", WorkCenter: "Pressing Station",
		Description: "250-ton hydraulic press for metal forming. Schuler HP-250",
		TeamName:    "Mechanical Team", TechnicianName: "Sunita Verma",
	},
	{
		Name: "Backup Generator", Category: "Electrical", Location: "Generator Room", Status: "available",
		Company:     "Adani",
		Description: "550 kW diesel generator for emergency power. Cummins C550D6",
		TeamName:    "Electrical Team", TechnicianName: "Priya Sharma",
	},
}

type requestData struct {
	Title          string
	Description    string
	EquipmentName  string
	TechnicianName string
	Type           string
	Priority       string
	Status         string
	// Сдвиги в днях относительно сегодняшнего дня
	ScheduledOffset *int
	DueOffset       *int
	CompletedOffset *int
	ActualHours     *float64
}

func days(n int) *int          { return &n }
func hours(h float64) *float64 { return &h }

var requestsData = []requestData{
	{
		Title:         "PREVENTIVE Maintenance - CNC Machine #1",
		Description:   "Scheduled quarterly maintenance including lubrication, calibration, and inspection",
		EquipmentName: "CNC Machine #1", TechnicianName: "Amit Patel",
		Type: "PREVENTIVE", Priority: "MEDIUM", Status: "NEW_REQUEST",
		ScheduledOffset: days(5), DueOffset: days(10),
	},
	{
		Title:         "CORRECTIVE Maintenance - Transformer Unit #3",
		Description:   "Unusual humming noise detected. Need immediate inspection.",
		EquipmentName: "Transformer Unit #3", TechnicianName: "Rajesh Kumar",
		Type: "CORRECTIVE", Priority: "HIGH", Status: "IN_PROGRESS",
		ScheduledOffset: days(0), DueOffset: days(2),
	},
	{
		Title:         "CORRECTIVE Maintenance - HVAC Unit - Building C",
		Description:   "Temperature control malfunction. Building C overheating.",
		EquipmentName: "HVAC Unit - Building C", TechnicianName: "Mohammed Ali",
		Type: "CORRECTIVE", Priority: "URGENT", Status: "IN_PROGRESS",
		ScheduledOffset: days(-2), DueOffset: days(0),
	},
	{
		Title:         "PREVENTIVE Maintenance - Hydraulic Press",
		Description:   "Monthly inspection and oil change",
		EquipmentName: "Hydraulic Press", TechnicianName: "Sunita Verma",
		Type: "PREVENTIVE", Priority: "LOW", Status: "UNDER_REVIEW",
		ScheduledOffset: days(-10), DueOffset: days(-5), CompletedOffset: days(-5), ActualHours: hours(3.5),
	},
	{
		Title:         "CORRECTIVE Maintenance - Backup Generator",
		Description:   "Generator failed to start during weekly test",
		EquipmentName: "Backup Generator", TechnicianName: "Priya Sharma",
		Type: "CORRECTIVE", Priority: "HIGH", Status: "NEW_REQUEST",
		ScheduledOffset: days(1), DueOffset: days(3),
	},
}
