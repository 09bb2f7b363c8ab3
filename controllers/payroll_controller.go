package controllers

import (
	"strconv"

	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

type PayrollController struct {
	Service *services.PayrollService
}

func NewPayrollController(service *services.PayrollService) PayrollController {
	return PayrollController{Service: service}
}

// GetMonthlyPayroll tính bảng lương cả tháng cho mọi thợ đang hoạt động.
// Không cache: số liệu lương phải luôn tính lại từ chấm công mới nhất.
func (p PayrollController) GetMonthlyPayroll(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	report, err := p.Service.CalculateMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, report)
}

func (p PayrollController) GetWorkerPayroll(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	workerID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã thợ không hợp lệ")
		return
	}

	payroll, err := p.Service.CalculateWorkerMonth(c.Request.Context(), uint(workerID), year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, payroll)
}

// GetPayrollDetail trả bảng kê chấm công từng ngày, tùy chọn lọc theo một thợ
func (p PayrollController) GetPayrollDetail(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	var workerID *uint
	if workerIDStr := c.Query("workerId"); workerIDStr != "" {
		id, err := strconv.ParseUint(workerIDStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "Mã thợ không hợp lệ")
			return
		}
		parsed := uint(id)
		workerID = &parsed
	}

	details, err := p.Service.MonthlyDetail(c.Request.Context(), year, month, workerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, details)
}
