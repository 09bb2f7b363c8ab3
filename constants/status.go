package constants

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleAdmin       = 1
	RoleAccountant  = 2
	RoleSiteManager = 3
)

// Worker role
const (
	WorkerRoleTeamLead     = "team-lead"
	WorkerRoleMason        = "mason"
	WorkerRoleHelper       = "helper"
	WorkerRoleExternalHire = "external-hire"
)

// Meal - suất ăn của một lần chấm công
const (
	MealFullDay = "FULL_DAY"
	MealHalfDay = "HALF_DAY"
	MealNone    = "NONE"
)

// MealCosts - bảng giá suất ăn (VND), tra theo Meal, độc lập với dayFraction
var MealCosts = map[string]int64{
	MealFullDay: 80000,
	MealHalfDay: 40000,
	MealNone:    0,
}

// DefaultDayRates - đơn giá công nhật mặc định theo vai trò (VND/ngày)
var DefaultDayRates = map[string]int64{
	WorkerRoleTeamLead:     500000,
	WorkerRoleMason:        420000,
	WorkerRoleHelper:       300000,
	WorkerRoleExternalHire: 350000,
}

// DefaultMonthlyAllowance - phụ cấp tháng mặc định cho đội trưởng (VND)
const DefaultMonthlyAllowance = 1500000

// DefaultAllowanceForRole trả phụ cấp tháng mặc định theo vai trò:
// chỉ đội trưởng có phụ cấp, các vai trò khác là 0
func DefaultAllowanceForRole(role string) int64 {
	if role == WorkerRoleTeamLead {
		return DefaultMonthlyAllowance
	}
	return 0
}

// Expense category - loại chi phí
const (
	ExpenseCategoryMaterialExtra = "vat-tu-phu"
	ExpenseCategoryLabor         = "nhan-cong"
	ExpenseCategoryTransport     = "van-chuyen"
	ExpenseCategoryMachine       = "may-moc"
	ExpenseCategoryMeal          = "an-uong"
	ExpenseCategoryOther         = "khac"
)

// ExpenseCategories - danh sách loại chi phí hợp lệ
var ExpenseCategories = []string{
	ExpenseCategoryMaterialExtra,
	ExpenseCategoryLabor,
	ExpenseCategoryTransport,
	ExpenseCategoryMachine,
	ExpenseCategoryMeal,
	ExpenseCategoryOther,
}

// IsValidMeal kiểm tra giá trị meal hợp lệ
func IsValidMeal(meal string) bool {
	_, ok := MealCosts[meal]
	return ok
}

// IsValidWorkerRole kiểm tra vai trò thợ hợp lệ
func IsValidWorkerRole(role string) bool {
	_, ok := DefaultDayRates[role]
	return ok
}

// IsValidExpenseCategory kiểm tra loại chi phí hợp lệ
func IsValidExpenseCategory(category string) bool {
	for _, c := range ExpenseCategories {
		if c == category {
			return true
		}
	}
	return false
}
