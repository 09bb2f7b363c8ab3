package dto

import "time"

// DashboardCounts - số lượng bản ghi theo từng loại
type DashboardCounts struct {
	Workers       int64 `json:"workers"`
	Projects      int64 `json:"projects"`
	Attendances   int64 `json:"attendances"`
	Receipts      int64 `json:"receipts"`
	Expenses      int64 `json:"expenses"`
	Materials     int64 `json:"materials"`
	ExternalHires int64 `json:"externalHires"`
}

// DashboardTotals - các tổng tiền toàn hệ thống (đã loại bản ghi xóa mềm)
type DashboardTotals struct {
	Receipts      int64 `json:"receiptsVnd"`
	Expenses      int64 `json:"expensesVnd"`
	Materials     int64 `json:"materialsVnd"`
	ExternalHires int64 `json:"externalHiresVnd"`
	NetProfit     int64 `json:"netProfitVnd"`
}

// ActivityItem - một mục trong danh sách hoạt động gần đây
type ActivityItem struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	ProjectID   uint      `json:"projectId"`
	Description string    `json:"description"`
	Amount      int64     `json:"amountVnd"`
}

// DashboardOverview - tổng hợp cho màn hình dashboard
type DashboardOverview struct {
	Counts         DashboardCounts `json:"counts"`
	Totals         DashboardTotals `json:"totals"`
	RecentActivity []ActivityItem  `json:"recentActivity"`
}
