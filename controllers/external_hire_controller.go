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

type ExternalHireController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewExternalHireController(db *gorm.DB, redisCli *redis.Client) ExternalHireController {
	return ExternalHireController{
		DB:    db,
		Redis: redisCli,
	}
}

// GetExternalHires mặc định chỉ trả hợp đồng còn hiệu lực; truyền
// includeInactive=true để xem cả bản ghi đã xóa mềm
func (h ExternalHireController) GetExternalHires(c *gin.Context) {
	page, limit := parsePagination(c)

	query := h.DB.Preload("Project")
	if c.Query("includeInactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if projectIDStr := c.Query("projectId"); projectIDStr != "" {
		query = query.Where("project_id = ?", projectIDStr)
	}

	var total int64
	if err := query.Model(&models.ExternalHire{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var hires []models.ExternalHire
	if err := query.Order("start_date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&hires).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, hires, page, limit, int(total))
}

func (h ExternalHireController) CreateExternalHire(c *gin.Context) {
	var input dto.CreateExternalHireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := h.DB.First(&project, input.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}

	hire := models.ExternalHire{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		StartDate: startDate,
		Amount:    input.Amount,
		IsActive:  true,
	}

	if input.EndDate != "" {
		endDate, err := parseDate(input.EndDate)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ")
			return
		}
		hire.EndDate = &endDate
	}

	if err := validator.ValidateDateRange(hire.StartDate, hire.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.DB.Create(&hire).Error; err != nil {
		response.ServerError(c)
		return
	}

	h.invalidateCache()
	response.Success(c, hire)
}

func (h ExternalHireController) UpdateExternalHire(c *gin.Context) {
	var input dto.UpdateExternalHireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var hire models.ExternalHire
	if err := h.DB.First(&hire, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Title != nil {
		hire.Title = *input.Title
	}
	if input.StartDate != nil {
		startDate, err := parseDate(*input.StartDate)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
			return
		}
		hire.StartDate = startDate
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			hire.EndDate = nil
		} else {
			endDate, err := parseDate(*input.EndDate)
			if err != nil {
				response.BadRequest(c, "Ngày kết thúc không hợp lệ")
				return
			}
			hire.EndDate = &endDate
		}
	}
	if input.Amount != nil {
		if err := validator.ValidateAmount(*input.Amount); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		hire.Amount = *input.Amount
	}

	if err := validator.ValidateDateRange(hire.StartDate, hire.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.DB.Save(&hire).Error; err != nil {
		response.ServerError(c)
		return
	}

	h.invalidateCache()
	response.Success(c, hire)
}

// DeleteExternalHire là xóa mềm, bản ghi vẫn còn trong DB
func (h ExternalHireController) DeleteExternalHire(c *gin.Context) {
	var hire models.ExternalHire
	if err := h.DB.First(&hire, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	hire.IsActive = false
	if err := h.DB.Save(&hire).Error; err != nil {
		response.ServerError(c)
		return
	}

	h.invalidateCache()
	response.Success(c, nil)
}

func (h ExternalHireController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, h.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
