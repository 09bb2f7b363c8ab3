package controllers

import (
	"strconv"

	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

type CashflowController struct {
	Service *services.CashflowService
}

func NewCashflowController(service *services.CashflowService) CashflowController {
	return CashflowController{Service: service}
}

// GetProjectCashflow tổng hợp dòng tiền của một công trình.
// Không truyền year/month thì tính trọn đời công trình.
func (cf CashflowController) GetProjectCashflow(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Mã công trình không hợp lệ")
		return
	}

	var year, month *int
	if yearStr := c.Query("year"); yearStr != "" {
		y, m, ok := parseYearMonth(c)
		if !ok {
			return
		}
		year = &y
		month = &m
	}

	result, err := cf.Service.ProjectCashflow(c.Request.Context(), uint(projectID), year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, result)
}
