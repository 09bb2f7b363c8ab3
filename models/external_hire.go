package models

import "time"

// ExternalHire - thuê ngoài trọn gói cho một công trình (khoán). IsActive=false
// là xóa mềm: giữ trong DB nhưng loại khỏi danh sách và các tổng hợp.
type ExternalHire struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	ProjectID uint       `gorm:"index;not null" json:"projectId"`
	Title     string     `gorm:"not null" json:"title"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Amount    int64      `gorm:"not null" json:"amountVnd"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
