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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notification.Service
}

func NewAttendanceController(db *gorm.DB, redisCli *redis.Client, notifier notification.Service) AttendanceController {
	return AttendanceController{
		DB:       db,
		Redis:    redisCli,
		Notifier: notifier,
	}
}

func (a AttendanceController) GetAttendances(c *gin.Context) {
	page, limit := parsePagination(c)

	query := a.DB.Preload("Worker").Preload("Project")

	if workerIDStr := c.Query("workerId"); workerIDStr != "" {
		query = query.Where("worker_id = ?", workerIDStr)
	}
	if projectIDStr := c.Query("projectId"); projectIDStr != "" {
		query = query.Where("project_id = ?", projectIDStr)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, month, ok := parseYearMonth(c)
		if !ok {
			return
		}
		start, end, err := services.MonthWindow(year, month)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		query = query.Where("date >= ? AND date < ?", start, end)
	}

	var total int64
	if err := query.Model(&models.Attendance{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var attendances []models.Attendance
	if err := query.Order("date DESC, id DESC").
		Offset(page * limit).Limit(limit).
		Find(&attendances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, attendances, page, limit, int(total))
}

func (a AttendanceController) CreateAttendance(c *gin.Context) {
	var input dto.CreateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		response.BadRequest(c, "Ngày chấm công không hợp lệ")
		return
	}

	var worker models.Worker
	if err := a.DB.First(&worker, input.WorkerID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var project models.Project
	if err := a.DB.First(&project, input.ProjectID).Error; err != nil {
		response.NotFound(c)
		return
	}

	attendance := models.Attendance{
		WorkerID:  input.WorkerID,
		ProjectID: input.ProjectID,
		Date:      date,
		Meal:      input.Meal,
		Notes:     input.Notes,
	}

	// Không truyền phần công thì tính cả ngày
	if input.DayFraction != nil {
		attendance.DayFraction = *input.DayFraction
	} else {
		attendance.DayFraction = 1
	}
	if attendance.Meal == "" {
		attendance.Meal = "NONE"
	}

	if err := validator.ValidateAttendance(&attendance); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := a.DB.Create(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	a.invalidateCache()

	if a.Notifier != nil {
		msg := notification.NewActivityMessageBuilder("Chấm công", project.Name, worker.FullName, 0).Build()
		if err := a.Notifier.SendMessage(msg); err != nil {
			log.Printf("Lỗi khi gửi thông báo chấm công: %v", err)
		}
	}

	response.Success(c, attendance)
}

func (a AttendanceController) UpdateAttendance(c *gin.Context) {
	var input dto.UpdateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var attendance models.Attendance
	if err := a.DB.First(&attendance, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.ProjectID != nil {
		var project models.Project
		if err := a.DB.First(&project, *input.ProjectID).Error; err != nil {
			response.NotFound(c)
			return
		}
		attendance.ProjectID = *input.ProjectID
	}
	if input.Date != nil {
		date, err := parseDate(*input.Date)
		if err != nil {
			response.BadRequest(c, "Ngày chấm công không hợp lệ")
			return
		}
		attendance.Date = date
	}
	if input.DayFraction != nil {
		attendance.DayFraction = *input.DayFraction
	}
	if input.Meal != nil {
		attendance.Meal = *input.Meal
	}
	if input.Notes != nil {
		attendance.Notes = *input.Notes
	}

	if err := validator.ValidateAttendance(&attendance); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := a.DB.Save(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	a.invalidateCache()
	response.Success(c, attendance)
}

func (a AttendanceController) DeleteAttendance(c *gin.Context) {
	var attendance models.Attendance
	if err := a.DB.First(&attendance, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := a.DB.Delete(&attendance).Error; err != nil {
		response.ServerError(c)
		return
	}

	a.invalidateCache()
	response.Success(c, nil)
}

func (a AttendanceController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, a.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
