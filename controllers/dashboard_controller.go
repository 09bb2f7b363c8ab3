package controllers

import (
	"log"
	"time"

	"congtrinh/config"
	"congtrinh/dto"
	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type DashboardController struct {
	Service *services.DashboardService
	Redis   *redis.Client
}

func NewDashboardController(service *services.DashboardService, redisCli *redis.Client) DashboardController {
	return DashboardController{
		Service: service,
		Redis:   redisCli,
	}
}

// GetOverview trả tổng hợp dashboard, cache 5 phút trong Redis
func (d DashboardController) GetOverview(c *gin.Context) {
	var overview dto.DashboardOverview

	if found, err := services.GetFromRedis(config.Ctx, d.Redis, services.CacheKeyDashboard, &overview); err == nil && found {
		response.Success(c, overview)
		return
	}

	overview, err := d.Service.Overview(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := services.SetToRedis(config.Ctx, d.Redis, services.CacheKeyDashboard, overview, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu dashboard vào Redis: %v", err)
	}

	response.Success(c, overview)
}
