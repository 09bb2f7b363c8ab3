package services

import (
	"fmt"

	"congtrinh/dto"

	"github.com/xuri/excelize/v2"
)

// BuildPayrollWorkbook dựng file Excel bảng lương tháng: sheet tổng hợp theo
// thợ và sheet chấm công chi tiết theo từng ngày
func BuildPayrollWorkbook(report dto.MonthlyPayrollReport, details []dto.WorkerAttendanceDetail) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "BangLuong"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Bảng lương tháng %02d/%04d", report.Month, report.Year))

	headers := []string{"STT", "Họ tên", "Vai trò", "Số công", "Tiền công", "Tiền ăn", "Phụ cấp", "Thực lãnh", "Ghi chú"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	row := 3
	for i, w := range report.Workers {
		note := ""
		if w.Failed {
			note = "Lỗi dữ liệu: " + w.FailReason
		}
		values := []interface{}{i + 1, w.FullName, w.Role, w.TotalDays, w.WageTotal, w.MealTotal, w.Allowance, w.Payable, note}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Tổng cộng")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", row), report.GrandTotal)

	detailSheet := "ChamCong"
	if _, err := f.NewSheet(detailSheet); err != nil {
		return nil, err
	}

	detailHeaders := []string{"Họ tên", "Ngày", "Số công", "Suất ăn", "Tiền ăn", "Công trình"}
	for i, h := range detailHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(detailSheet, cell, h)
	}

	row = 2
	for _, d := range details {
		for _, day := range d.Days {
			values := []interface{}{d.FullName, day.Date, day.DayFraction, day.Meal, day.MealCost, day.ProjectName}
			for j, v := range values {
				cell, err := excelize.CoordinatesToCellName(j+1, row)
				if err != nil {
					return nil, err
				}
				f.SetCellValue(detailSheet, cell, v)
			}
			row++
		}
		f.SetCellValue(detailSheet, fmt.Sprintf("A%d", row), d.FullName+" - tổng công")
		f.SetCellValue(detailSheet, fmt.Sprintf("C%d", row), d.TotalDays)
		row++
	}

	return f, nil
}

// BuildCashflowWorkbook dựng file Excel dòng tiền của một công trình
func BuildCashflowWorkbook(cf dto.ProjectCashflow) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "DongTien"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Dòng tiền công trình: %s", cf.ProjectName)
	if cf.Year != nil && cf.Month != nil {
		title = fmt.Sprintf("%s - tháng %02d/%04d", title, *cf.Month, *cf.Year)
	}
	f.SetCellValue(sheet, "A1", title)

	summary := [][]interface{}{
		{"Tổng thu", cf.Totals.TotalReceipts},
		{"Tổng chi phí", cf.Totals.TotalExpenses},
		{"Tổng vật tư", cf.Totals.TotalMaterials},
		{"Tiền công ước tính", cf.Totals.WageEstimated},
		{"Tiền vào", cf.Totals.CashIn},
		{"Tiền ra", cf.Totals.CashOut},
		{"Lãi gộp ước tính", cf.Totals.GrossProfitEstimated},
	}
	for i, pair := range summary {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), pair[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), pair[1])
	}

	receiptSheet := "PhieuThu"
	if _, err := f.NewSheet(receiptSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(receiptSheet, "A1", "Ngày")
	f.SetCellValue(receiptSheet, "B1", "Số tiền")
	f.SetCellValue(receiptSheet, "C1", "Diễn giải")
	for i, r := range cf.Details.Receipts {
		f.SetCellValue(receiptSheet, fmt.Sprintf("A%d", i+2), r.Date.UTC().Format("2006-01-02"))
		f.SetCellValue(receiptSheet, fmt.Sprintf("B%d", i+2), r.Amount)
		f.SetCellValue(receiptSheet, fmt.Sprintf("C%d", i+2), r.Description)
	}

	expenseSheet := "ChiPhi"
	if _, err := f.NewSheet(expenseSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(expenseSheet, "A1", "Ngày")
	f.SetCellValue(expenseSheet, "B1", "Loại")
	f.SetCellValue(expenseSheet, "C1", "Số tiền")
	f.SetCellValue(expenseSheet, "D1", "Diễn giải")
	for i, e := range cf.Details.Expenses {
		f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", i+2), e.Date.UTC().Format("2006-01-02"))
		f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", i+2), e.Category)
		f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", i+2), e.Amount)
		f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", i+2), e.Description)
	}

	materialSheet := "VatTu"
	if _, err := f.NewSheet(materialSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(materialSheet, "A1", "Ngày")
	f.SetCellValue(materialSheet, "B1", "Vật tư")
	f.SetCellValue(materialSheet, "C1", "Số lượng")
	f.SetCellValue(materialSheet, "D1", "Đơn vị")
	f.SetCellValue(materialSheet, "E1", "Thành tiền")
	f.SetCellValue(materialSheet, "F1", "Nhà cung cấp")
	for i, m := range cf.Details.Materials {
		f.SetCellValue(materialSheet, fmt.Sprintf("A%d", i+2), m.Date.UTC().Format("2006-01-02"))
		f.SetCellValue(materialSheet, fmt.Sprintf("B%d", i+2), m.ItemName)
		f.SetCellValue(materialSheet, fmt.Sprintf("C%d", i+2), m.QuantityText)
		f.SetCellValue(materialSheet, fmt.Sprintf("D%d", i+2), m.Unit)
		f.SetCellValue(materialSheet, fmt.Sprintf("E%d", i+2), m.Total)
		f.SetCellValue(materialSheet, fmt.Sprintf("F%d", i+2), m.Supplier)
	}

	return f, nil
}
