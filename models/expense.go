package models

import "time"

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	ProjectID   uint      `gorm:"index;not null" json:"projectId"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Category    string    `gorm:"type:varchar(20);default:khac" json:"category"`
	Amount      int64     `gorm:"not null" json:"amountVnd"`
	Description string    `json:"description"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
