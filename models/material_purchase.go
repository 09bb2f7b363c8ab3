package models

import "time"

// MaterialPurchase - một lần mua vật tư cho công trình.
// UnitPrice lưu tổng tiền của lần mua (giữ nguyên cách ghi của sổ cũ), Total là
// giá trị được cộng vào các báo cáo.
type MaterialPurchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	ProjectID    uint      `gorm:"index;not null" json:"projectId"`
	Date         time.Time `gorm:"index;not null" json:"date"`
	ItemName     string    `gorm:"not null" json:"itemName"`
	QuantityText string    `json:"quantityText"`
	Unit         string    `json:"unit"`
	UnitPrice    int64     `json:"unitPriceVnd"`
	Total        int64     `gorm:"not null" json:"totalVnd"`
	Supplier     string    `json:"supplier"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
