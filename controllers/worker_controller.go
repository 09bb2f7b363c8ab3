package controllers

import (
	"log"
	"strings"
	"time"

	"congtrinh/config"
	"congtrinh/constants"
	"congtrinh/dto"
	"congtrinh/models"
	"congtrinh/response"
	"congtrinh/services"
	"congtrinh/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type WorkerController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewWorkerController(db *gorm.DB, redisCli *redis.Client) WorkerController {
	return WorkerController{
		DB:    db,
		Redis: redisCli,
	}
}

func (w WorkerController) GetWorkers(c *gin.Context) {
	page, limit := parsePagination(c)
	name := c.Query("name")
	role := c.Query("role")
	isActiveStr := c.Query("isActive")

	var allWorkers []models.Worker

	// Kiểm tra cache trước, không có thì truy vấn DB
	if found, err := services.GetFromRedis(config.Ctx, w.Redis, services.CacheKeyWorkersAll, &allWorkers); err != nil || !found {
		if err := w.DB.Order("full_name ASC, id ASC").Find(&allWorkers).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, w.Redis, services.CacheKeyWorkersAll, allWorkers, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách thợ vào Redis: %v", err)
		}
	}

	var filtered []models.Worker
	for _, worker := range allWorkers {
		if name != "" && !strings.Contains(strings.ToLower(worker.FullName), strings.ToLower(name)) &&
			!strings.Contains(worker.PhoneNumber, name) {
			continue
		}
		if role != "" && worker.Role != role {
			continue
		}
		if isActiveStr == "true" && !worker.IsActive {
			continue
		}
		if isActiveStr == "false" && worker.IsActive {
			continue
		}
		filtered = append(filtered, worker)
	}

	paged := paginateSlice(filtered, page, limit)
	response.SuccessWithPagination(c, paged, page, limit, len(filtered))
}

func (w WorkerController) CreateWorker(c *gin.Context) {
	var input dto.CreateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	worker := models.Worker{
		FullName:    input.FullName,
		Role:        input.Role,
		PhoneNumber: input.PhoneNumber,
		Notes:       input.Notes,
		IsActive:    true,
	}

	// Không truyền công nhật thì lấy theo mức mặc định của vai trò
	if input.DailyRate != nil {
		worker.DailyRate = *input.DailyRate
	} else {
		worker.DailyRate = constants.DefaultDayRates[input.Role]
	}
	if input.MonthlyAllowance != nil {
		worker.MonthlyAllowance = *input.MonthlyAllowance
	} else {
		worker.MonthlyAllowance = constants.DefaultAllowanceForRole(input.Role)
	}

	if err := validator.ValidateWorker(&worker); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := w.DB.Create(&worker).Error; err != nil {
		response.ServerError(c)
		return
	}

	w.invalidateCache()
	response.Success(c, worker)
}

func (w WorkerController) GetWorkerDetail(c *gin.Context) {
	var worker models.Worker
	if err := w.DB.First(&worker, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, worker)
}

func (w WorkerController) UpdateWorker(c *gin.Context) {
	var input dto.UpdateWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var worker models.Worker
	if err := w.DB.First(&worker, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.FullName != nil {
		worker.FullName = *input.FullName
	}
	if input.Role != nil {
		worker.Role = *input.Role
	}
	if input.DailyRate != nil {
		worker.DailyRate = *input.DailyRate
	}
	if input.MonthlyAllowance != nil {
		worker.MonthlyAllowance = *input.MonthlyAllowance
	}
	if input.PhoneNumber != nil {
		worker.PhoneNumber = *input.PhoneNumber
	}
	if input.Notes != nil {
		worker.Notes = *input.Notes
	}

	if err := validator.ValidateWorker(&worker); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := w.DB.Save(&worker).Error; err != nil {
		response.ServerError(c)
		return
	}

	w.invalidateCache()
	response.Success(c, worker)
}

// ChangeWorkerStatus bật/tắt thợ (xóa mềm): thợ tắt không vào bảng lương
func (w WorkerController) ChangeWorkerStatus(c *gin.Context) {
	var input dto.ChangeWorkerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var worker models.Worker
	if err := w.DB.First(&worker, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	worker.IsActive = input.IsActive
	if err := w.DB.Save(&worker).Error; err != nil {
		response.ServerError(c)
		return
	}

	w.invalidateCache()
	response.Success(c, worker)
}

func (w WorkerController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, w.Redis, services.CacheKeyWorkersAll); err != nil {
		log.Printf("Lỗi khi xóa cache danh sách thợ: %v", err)
	}
	if err := services.DeleteFromRedis(config.Ctx, w.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
