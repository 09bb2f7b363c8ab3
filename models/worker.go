package models

import "time"

type Worker struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
	FullName         string       `gorm:"not null" json:"fullName"`
	Role             string       `gorm:"type:varchar(20);default:helper" json:"role"`
	DailyRate        int64        `gorm:"not null;default:0" json:"dailyRateVnd"`
	MonthlyAllowance int64        `gorm:"not null;default:0" json:"monthlyAllowanceVnd"`
	PhoneNumber      string       `json:"phoneNumber"`
	IsActive         bool         `gorm:"default:true" json:"isActive"`
	Notes            string       `json:"notes"`
	Attendances      []Attendance `json:"attendances,omitempty" gorm:"foreignKey:WorkerID"`
}
