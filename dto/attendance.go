package dto

type CreateAttendanceInput struct {
	WorkerID    uint     `json:"workerId" binding:"required"`
	ProjectID   uint     `json:"projectId" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	DayFraction *float64 `json:"dayFraction"`
	Meal        string   `json:"meal"`
	Notes       string   `json:"notes"`
}

type UpdateAttendanceInput struct {
	ID          uint     `json:"id" binding:"required"`
	ProjectID   *uint    `json:"projectId"`
	Date        *string  `json:"date"`
	DayFraction *float64 `json:"dayFraction"`
	Meal        *string  `json:"meal"`
	Notes       *string  `json:"notes"`
}
