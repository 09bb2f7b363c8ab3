package dto

// WorkerPayroll - bảng lương tháng của một thợ.
// payable = wage + meal + allowance + adjustments
type WorkerPayroll struct {
	WorkerID    uint    `json:"workerId"`
	FullName    string  `json:"fullName"`
	Role        string  `json:"role"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	TotalDays   float64 `json:"totalDays"`
	WageTotal   int64   `json:"wageTotalVnd"`
	MealTotal   int64   `json:"mealTotalVnd"`
	Allowance   int64   `json:"allowanceVnd"`
	Adjustments int64   `json:"adjustmentsVnd"`
	Payable     int64   `json:"payableVnd"`
	Failed      bool    `json:"failed,omitempty"`
	FailReason  string  `json:"failReason,omitempty"`
}

// MonthlyPayrollReport - bảng lương tháng của toàn bộ thợ đang hoạt động
type MonthlyPayrollReport struct {
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Workers    []WorkerPayroll `json:"workers"`
	GrandTotal int64           `json:"grandTotalVnd"`
}

// AttendanceDay - một dòng chấm công trong bảng chi tiết
type AttendanceDay struct {
	Date        string  `json:"date"`
	DayFraction float64 `json:"dayFraction"`
	Meal        string  `json:"meal"`
	MealCost    int64   `json:"mealCostVnd"`
	ProjectName string  `json:"projectName"`
}

// WorkerAttendanceDetail - chi tiết chấm công theo từng thợ,
// sắp theo tên thợ rồi đến ngày tăng dần
type WorkerAttendanceDetail struct {
	WorkerID  uint            `json:"workerId"`
	FullName  string          `json:"fullName"`
	Role      string          `json:"role"`
	TotalDays float64         `json:"totalDays"`
	Days      []AttendanceDay `json:"days"`
}
