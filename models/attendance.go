package models

import "time"

// Attendance - một lần chấm công của thợ tại một công trình trong một ngày.
// Meal tra giá độc lập với DayFraction (nửa công vẫn có thể ăn suất cả ngày).
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	WorkerID    uint      `gorm:"index;not null" json:"workerId"`
	ProjectID   uint      `gorm:"index;not null" json:"projectId"`
	DayFraction float64   `gorm:"not null;default:1" json:"dayFraction"`
	Meal        string    `gorm:"type:varchar(10);default:NONE" json:"meal"`
	Notes       string    `json:"notes"`

	Worker  Worker  `json:"worker,omitempty" gorm:"foreignKey:WorkerID;references:ID"`
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
