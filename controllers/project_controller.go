package controllers

import (
	"log"
	"strings"
	"time"

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

type ProjectController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewProjectController(db *gorm.DB, redisCli *redis.Client) ProjectController {
	return ProjectController{
		DB:    db,
		Redis: redisCli,
	}
}

func (p ProjectController) GetProjects(c *gin.Context) {
	page, limit := parsePagination(c)
	name := c.Query("name")
	completedStr := c.Query("isCompleted")

	var allProjects []models.Project

	if found, err := services.GetFromRedis(config.Ctx, p.Redis, services.CacheKeyProjectsAll, &allProjects); err != nil || !found {
		if err := p.DB.Order("start_date DESC, id DESC").Find(&allProjects).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, p.Redis, services.CacheKeyProjectsAll, allProjects, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách công trình vào Redis: %v", err)
		}
	}

	var filtered []models.Project
	for _, project := range allProjects {
		if name != "" && !strings.Contains(strings.ToLower(project.Name), strings.ToLower(name)) &&
			!strings.Contains(strings.ToLower(project.ClientName), strings.ToLower(name)) {
			continue
		}
		if completedStr == "true" && !project.IsCompleted {
			continue
		}
		if completedStr == "false" && project.IsCompleted {
			continue
		}
		filtered = append(filtered, project)
	}

	paged := paginateSlice(filtered, page, limit)
	response.SuccessWithPagination(c, paged, page, limit, len(filtered))
}

func (p ProjectController) CreateProject(c *gin.Context) {
	var input dto.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}

	project := models.Project{
		Name:       input.Name,
		ClientName: input.ClientName,
		Address:    input.Address,
		StartDate:  startDate,
		Notes:      input.Notes,
	}

	if input.EndDate != "" {
		endDate, err := parseDate(input.EndDate)
		if err != nil {
			response.BadRequest(c, "Ngày kết thúc không hợp lệ")
			return
		}
		project.EndDate = &endDate
	}

	if err := validator.ValidateDateRange(project.StartDate, project.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := p.DB.Create(&project).Error; err != nil {
		response.ServerError(c)
		return
	}

	p.invalidateCache()
	response.Success(c, project)
}

func (p ProjectController) GetProjectDetail(c *gin.Context) {
	var project models.Project
	if err := p.DB.First(&project, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, project)
}

func (p ProjectController) UpdateProject(c *gin.Context) {
	var input dto.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := p.DB.First(&project, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.Address != nil {
		project.Address = *input.Address
	}
	if input.Notes != nil {
		project.Notes = *input.Notes
	}
	if input.StartDate != nil {
		startDate, err := parseDate(*input.StartDate)
		if err != nil {
			response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
			return
		}
		project.StartDate = startDate
	}
	if input.EndDate != nil {
		if *input.EndDate == "" {
			project.EndDate = nil
		} else {
			endDate, err := parseDate(*input.EndDate)
			if err != nil {
				response.BadRequest(c, "Ngày kết thúc không hợp lệ")
				return
			}
			project.EndDate = &endDate
		}
	}

	if err := validator.ValidateDateRange(project.StartDate, project.EndDate); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := p.DB.Save(&project).Error; err != nil {
		response.ServerError(c)
		return
	}

	p.invalidateCache()
	response.Success(c, project)
}

func (p ProjectController) ChangeProjectStatus(c *gin.Context) {
	var input dto.ChangeProjectStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var project models.Project
	if err := p.DB.First(&project, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	project.IsCompleted = input.IsCompleted
	if err := p.DB.Save(&project).Error; err != nil {
		response.ServerError(c)
		return
	}

	p.invalidateCache()
	response.Success(c, project)
}

func (p ProjectController) invalidateCache() {
	if err := services.DeleteFromRedis(config.Ctx, p.Redis, services.CacheKeyProjectsAll); err != nil {
		log.Printf("Lỗi khi xóa cache danh sách công trình: %v", err)
	}
	if err := services.DeleteFromRedis(config.Ctx, p.Redis, services.CacheKeyDashboard); err != nil {
		log.Printf("Lỗi khi xóa cache dashboard: %v", err)
	}
}
