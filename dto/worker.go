package dto

type CreateWorkerInput struct {
	FullName         string `json:"fullName" binding:"required"`
	Role             string `json:"role" binding:"required"`
	DailyRate        *int64 `json:"dailyRateVnd"`
	MonthlyAllowance *int64 `json:"monthlyAllowanceVnd"`
	PhoneNumber      string `json:"phoneNumber"`
	Notes            string `json:"notes"`
}

type UpdateWorkerInput struct {
	ID               uint    `json:"id" binding:"required"`
	FullName         *string `json:"fullName"`
	Role             *string `json:"role"`
	DailyRate        *int64  `json:"dailyRateVnd"`
	MonthlyAllowance *int64  `json:"monthlyAllowanceVnd"`
	PhoneNumber      *string `json:"phoneNumber"`
	Notes            *string `json:"notes"`
}

type ChangeWorkerStatusInput struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}
