package models

import "time"

type Project struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string     `gorm:"not null" json:"name"`
	ClientName  string     `json:"clientName"`
	Address     string     `json:"address"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	Notes       string     `json:"notes"`
}
