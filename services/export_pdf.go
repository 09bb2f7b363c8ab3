package services

import (
	"bytes"
	"fmt"

	"congtrinh/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/jung-kurt/gofpdf/v2"
)

// Font Arial của gofpdf không có glyph tiếng Việt nên nội dung PDF được bỏ dấu
// trước khi ghi; file Excel giữ nguyên dấu.
func pdfText(s string) string {
	return unidecode.Unidecode(s)
}

// GeneratePayrollPDF xuất bảng lương tháng ra PDF
func GeneratePayrollPDF(report dto.MonthlyPayrollReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, pdfText(fmt.Sprintf("Bang luong thang %02d/%04d", report.Month, report.Year)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 8, "Ho ten", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Vai tro", "1", 0, "L", true, 0, "")
	pdf.CellFormat(18, 8, "So cong", "1", 0, "R", true, 0, "")
	pdf.CellFormat(29, 8, "Tien cong", "1", 0, "R", true, 0, "")
	pdf.CellFormat(24, 8, "Tien an", "1", 0, "R", true, 0, "")
	pdf.CellFormat(34, 8, "Thuc lanh", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, w := range report.Workers {
		pdf.CellFormat(60, 7, pdfText(w.FullName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, pdfText(w.Role), "1", 0, "L", false, 0, "")
		pdf.CellFormat(18, 7, fmt.Sprintf("%.2f", w.TotalDays), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 7, formatVnd(w.WageTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(24, 7, formatVnd(w.MealTotal), "1", 0, "R", false, 0, "")
		pdf.CellFormat(34, 7, formatVnd(w.Payable), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(156, 8, "Tong cong", "1", 0, "R", true, 0, "")
	pdf.CellFormat(34, 8, formatVnd(report.GrandTotal), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCashflowPDF xuất báo cáo dòng tiền công trình ra PDF
func GenerateCashflowPDF(cf dto.ProjectCashflow) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	title := fmt.Sprintf("Dong tien cong trinh: %s", cf.ProjectName)
	if cf.Year != nil && cf.Month != nil {
		title = fmt.Sprintf("%s - thang %02d/%04d", title, *cf.Month, *cf.Year)
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, pdfText(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Tong hop", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	rows := []struct {
		label string
		value int64
	}{
		{"Tong thu", cf.Totals.TotalReceipts},
		{"Tong chi phi", cf.Totals.TotalExpenses},
		{"Tong vat tu", cf.Totals.TotalMaterials},
		{"Tien cong uoc tinh", cf.Totals.WageEstimated},
		{"Tien ra", cf.Totals.CashOut},
		{"Lai gop uoc tinh", cf.Totals.GrossProfitEstimated},
	}
	for _, r := range rows {
		pdf.CellFormat(120, 7, r.label, "LB", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, formatVnd(r.value), "RB", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Phieu thu", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, r := range cf.Details.Receipts {
		pdf.CellFormat(35, 6, r.Date.UTC().Format("2006-01-02"), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, formatVnd(r.Amount), "B", 0, "R", false, 0, "")
		pdf.CellFormat(110, 6, pdfText(r.Description), "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Chi phi", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, e := range cf.Details.Expenses {
		pdf.CellFormat(35, 6, e.Date.UTC().Format("2006-01-02"), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, pdfText(e.Category), "B", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, formatVnd(e.Amount), "B", 0, "R", false, 0, "")
		pdf.CellFormat(80, 6, pdfText(e.Description), "RB", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Vat tu", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, m := range cf.Details.Materials {
		pdf.CellFormat(35, 6, m.Date.UTC().Format("2006-01-02"), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(70, 6, pdfText(m.ItemName), "B", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, formatVnd(m.Total), "B", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, pdfText(m.Supplier), "RB", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatVnd định dạng số tiền VND có dấu chấm phân tách hàng nghìn
func formatVnd(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, c)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
