package models

import "time"

type Receipt struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	ProjectID   uint      `gorm:"index;not null" json:"projectId"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Amount      int64     `gorm:"not null" json:"amountVnd"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
