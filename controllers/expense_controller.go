package controllers

import (
	"log"

	"congtrinh/config"
	"congtrinh/dto"
	"congtrinh/models"
	"congtrinh/response"
	"congtrinh/services"
	"congtrinh/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ExpenseController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewExpenseController(db *gorm.DB, redisCli *redis.Client) ExpenseController {
	return ExpenseController{
		DB:    db,
		Redis: redisCli,
	}
}

func (e ExpenseController) GetExpenses(c *gin.Context) {
	page, limit := parsePagination(c)

	query := e.DB.Preload("Project")
	if projectIDStr := c.Query("projectId"); projectIDStr != "" {
		query = query.Where("project_id = ?", projectIDStr)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Model(&models.Expense{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var expenses []models.Expense
	if err := query.Order("date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&expenses).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, expenses, page, limit, int(total))
}

func (e ExpenseController) CreateExpense(c *gin.Context) {
	var input dto.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		response.BadRequest(c, "Ngày chi không hợp lệ")
		return
	}

	var project models.Project
	if err := e.DB.First(&project, input.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}

	expense := models.Expense{
		ProjectID:   input.ProjectID,
		Date:        date,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
	}

	if err := validator.ValidateExpense(&expense); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := e.DB.Create(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()
	response.Success(c, expense)
}

func (e ExpenseController) UpdateExpense(c *gin.Context) {
	var input dto.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var expense models.Expense
	if err := e.DB.First(&expense, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			response.BadRequest(c, "Ngày chi không hợp lệ")
			return
		}
		expense.Date = date
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}

	if err := validator.ValidateExpense(&expense); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := e.DB.Save(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()
	response.Success(c, expense)
}

func (e ExpenseController) DeleteExpense(c *gin.Context) {
	var expense models.Expense
	if err := e.DB.First(&expense, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := e.DB.Delete(&expense).Error; err != nil {
		response.ServerError(c)
		return
	}

	e.invalidateCache()
	response.Success(c, nil)
}

func (e ExpenseController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, e.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
