package controllers

import (
	"fmt"
	"log"
	"strconv"

	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Payroll  *services.PayrollService
	Cashflow *services.CashflowService
}

func NewExportController(payroll *services.PayrollService, cashflow *services.CashflowService) ExportController {
	return ExportController{
		Payroll:  payroll,
		Cashflow: cashflow,
	}
}

// ExportPayrollExcel xuất bảng lương tháng ra file Excel
func (e ExportController) ExportPayrollExcel(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	report, err := e.Payroll.CalculateMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	details, err := e.Payroll.MonthlyDetail(c.Request.Context(), year, month, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	file, err := services.BuildPayrollWorkbook(report, details)
	if err != nil {
		response.ServerError(c)
		return
	}

	fileName := fmt.Sprintf("bang-luong-%d-%02d.xlsx", year, month)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := file.Write(c.Writer); err != nil {
		log.Printf("Lỗi khi ghi file Excel bảng lương: %v", err)
	}
}

// ExportPayrollPDF xuất bảng lương tháng ra PDF
func (e ExportController) ExportPayrollPDF(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	report, err := e.Payroll.CalculateMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdfBytes, err := services.GeneratePayrollPDF(report)
	if err != nil {
		response.ServerError(c)
		return
	}

	fileName := fmt.Sprintf("bang-luong-%d-%02d.pdf", year, month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(200, "application/pdf", pdfBytes)
}

// ExportCashflowExcel xuất dòng tiền công trình ra file Excel
func (e ExportController) ExportCashflowExcel(c *gin.Context) {
	projectID, year, month, ok := e.parseCashflowParams(c)
	if !ok {
		return
	}

	cf, err := e.Cashflow.ProjectCashflow(c.Request.Context(), projectID, year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	file, err := services.BuildCashflowWorkbook(cf)
	if err != nil {
		response.ServerError(c)
		return
	}

	fileName := fmt.Sprintf("dong-tien-cong-trinh-%d.xlsx", projectID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))

	if err := file.Write(c.Writer); err != nil {
		log.Printf("Lỗi khi ghi file Excel dòng tiền: %v", err)
	}
}

// ExportCashflowPDF xuất dòng tiền công trình ra PDF
func (e ExportController) ExportCashflowPDF(c *gin.Context) {
	projectID, year, month, ok := e.parseCashflowParams(c)
	if !ok {
		return
	}

	cf, err := e.Cashflow.ProjectCashflow(c.Request.Context(), projectID, year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pdfBytes, err := services.GenerateCashflowPDF(cf)
	if err != nil {
		response.ServerError(c)
		return
	}

	fileName := fmt.Sprintf("dong-tien-cong-trinh-%d.pdf", projectID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(200, "application/pdf", pdfBytes)
}

func (e ExportController) parseCashflowParams(c *gin.Context) (uint, *int, *int, bool) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã công trình không hợp lệ")
		return 0, nil, nil, false
	}

	var year, month *int
	if yearStr := c.Query("year"); yearStr != "" {
		y, m, ok := parseYearMonth(c)
		if !ok {
			return 0, nil, nil, false
		}
		year = &y
		month = &m
	}

	return uint(projectID), year, month, true
}
