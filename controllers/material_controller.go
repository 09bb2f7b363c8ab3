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

type MaterialController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewMaterialController(db *gorm.DB, redisCli *redis.Client) MaterialController {
	return MaterialController{
		DB:    db,
		Redis: redisCli,
	}
}

func (m MaterialController) GetMaterials(c *gin.Context) {
	page, limit := parsePagination(c)

	// Mặc định chỉ trả vật tư đang hiệu lực, truyền includeInactive=true để xem cả bản ghi đã xóa mềm
	query := m.DB.Preload("Project")
	if c.Query("includeInactive") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if projectIDStr := c.Query("projectId"); projectIDStr != "" {
		query = query.Where("project_id = ?", projectIDStr)
	}

	var total int64
	if err := query.Model(&models.MaterialPurchase{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var materials []models.MaterialPurchase
	if err := query.Order("date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&materials).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, materials, page, limit, int(total))
}

func (m MaterialController) CreateMaterial(c *gin.Context) {
	var input dto.CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		response.BadRequest(c, "Ngày mua không hợp lệ")
		return
	}

	if err := validator.ValidateAmount(input.Total); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := m.DB.First(&project, input.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}

	material := models.MaterialPurchase{
		ProjectID:    input.ProjectID,
		Date:         date,
		ItemName:     input.ItemName,
		QuantityText: input.QuantityText,
		Unit:         input.Unit,
		UnitPrice:    input.UnitPrice,
		Total:        input.Total,
		Supplier:     input.Supplier,
		IsActive:     true,
	}

	if err := m.DB.Create(&material).Error; err != nil {
		response.ServerError(c)
		return
	}

	m.invalidateCache()
	response.Success(c, material)
}

func (m MaterialController) UpdateMaterial(c *gin.Context) {
	var input dto.UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var material models.MaterialPurchase
	if err := m.DB.First(&material, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			response.BadRequest(c, "Ngày mua không hợp lệ")
			return
		}
		material.Date = date
	}
	if input.ItemName != nil {
		material.ItemName = *input.ItemName
	}
	if input.QuantityText != nil {
		material.QuantityText = *input.QuantityText
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}
	if input.UnitPrice != nil {
		material.UnitPrice = *input.UnitPrice
	}
	if input.Total != nil {
		if err := validator.ValidateAmount(*input.Total); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		material.Total = *input.Total
	}
	if input.Supplier != nil {
		material.Supplier = *input.Supplier
	}

	if err := m.DB.Save(&material).Error; err != nil {
		response.ServerError(c)
		return
	}

	m.invalidateCache()
	response.Success(c, material)
}

// DeleteMaterial là xóa mềm: tắt IsActive để loại khỏi các tổng hợp
func (m MaterialController) DeleteMaterial(c *gin.Context) {
	var material models.MaterialPurchase
	if err := m.DB.First(&material, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	material.IsActive = false
	if err := m.DB.Save(&material).Error; err != nil {
		response.ServerError(c)
		return
	}

	m.invalidateCache()
	response.Success(c, nil)
}

func (m MaterialController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, m.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
