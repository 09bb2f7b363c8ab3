package dto

import "congtrinh/models"

// CashflowTotals - các tổng thu chi của một công trình.
// wageEstimated chỉ là ước tính theo công nhật, không gồm tiền ăn và phụ cấp.
type CashflowTotals struct {
	TotalReceipts        int64 `json:"totalReceiptsVnd"`
	TotalExpenses        int64 `json:"totalExpensesVnd"`
	TotalMaterials       int64 `json:"totalMaterialsVnd"`
	WageEstimated        int64 `json:"wageEstimatedVnd"`
	CashIn               int64 `json:"cashInVnd"`
	CashOut              int64 `json:"cashOutVnd"`
	GrossProfitEstimated int64 `json:"grossProfitEstimatedVnd"`
}

// CashflowDetails - dữ liệu thô kèm theo để drill-down báo cáo
type CashflowDetails struct {
	Receipts  []models.Receipt          `json:"receipts"`
	Expenses  []models.Expense          `json:"expenses"`
	Materials []models.MaterialPurchase `json:"materials"`
}

// ProjectCashflow - báo cáo dòng tiền của một công trình, tùy chọn lọc theo tháng
type ProjectCashflow struct {
	ProjectID   uint            `json:"projectId"`
	ProjectName string          `json:"projectName"`
	Year        *int            `json:"year,omitempty"`
	Month       *int            `json:"month,omitempty"`
	Totals      CashflowTotals  `json:"totals"`
	Details     CashflowDetails `json:"details"`
}
