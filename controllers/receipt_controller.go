package controllers

import (
	"log"

	"congtrinh/config"
	"congtrinh/dto"
	"congtrinh/models"
	"congtrinh/response"
	"congtrinh/services"
	"congtrinh/services/notification"
	"congtrinh/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ReceiptController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
}

func NewReceiptController(db *gorm.DB, redisCli *redis.Client, notifier notification.Service) ReceiptController {
	return ReceiptController{
		DB:       db,
		Redis:    redisCli,
		Notifier: notifier,
	}
}

func (r ReceiptController) GetReceipts(c *gin.Context) {
	page, limit := parsePagination(c)

	query := r.DB.Preload("Project")
	if projectIDStr := c.Query("projectId"); projectIDStr != "" {
		query = query.Where("project_id = ?", projectIDStr)
	}

	var total int64
	if err := query.Model(&models.Receipt{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var receipts []models.Receipt
	if err := query.Order("date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&receipts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, receipts, page, limit, int(total))
}

// CreateReceipt nhận multipart form, ảnh phiếu thu (nếu có) đẩy lên Cloudinary
func (r ReceiptController) CreateReceipt(c *gin.Context) {
	var input dto.CreateReceiptInput
	if err := c.ShouldBind(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		response.BadRequest(c, "Ngày thu không hợp lệ")
		return
	}

	if err := validator.ValidateAmount(input.Amount); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := r.DB.First(&project, input.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}

	receipt := models.Receipt{
		ProjectID:   input.ProjectID,
		Date:        date,
		Amount:      input.Amount,
		Description: input.Description,
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Không đọc được ảnh phiếu thu")
			return
		}
		defer src.Close()

		resp, err := config.Cloudinary.Upload.Upload(c.Request.Context(), src, uploader.UploadParams{Folder: "receipts"})
		if err != nil {
			log.Printf("Lỗi khi tải ảnh phiếu thu lên Cloudinary: %v", err)
			response.ServerError(c)
			return
		}
		receipt.ImageURL = resp.SecureURL
	}

	if err := r.DB.Create(&receipt).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateCache()

	if r.Notifier != nil {
		msg := notification.NewActivityMessageBuilder("Phiếu thu", project.Name, receipt.Description, receipt.Amount).Build()
		if err := r.Notifier.SendMessage(msg); err != nil {
			log.Printf("Lỗi khi gửi thông báo phiếu thu: %v", err)
		}
	}

	response.Success(c, receipt)
}

func (r ReceiptController) UpdateReceipt(c *gin.Context) {
	var input dto.UpdateReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var receipt models.Receipt
	if err := r.DB.First(&receipt, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			response.BadRequest(c, "Ngày thu không hợp lệ")
			return
		}
		receipt.Date = date
	}
	if input.Amount != nil {
		if err := validator.ValidateAmount(*input.Amount); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		receipt.Amount = *input.Amount
	}
	if input.Description != nil {
		receipt.Description = *input.Description
	}

	if err := r.DB.Save(&receipt).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateCache()
	response.Success(c, receipt)
}

func (r ReceiptController) DeleteReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := r.DB.First(&receipt, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := r.DB.Delete(&receipt).Error; err != nil {
		response.ServerError(c)
		return
	}

	r.invalidateCache()
	response.Success(c, nil)
}

func (r ReceiptController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, r.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
