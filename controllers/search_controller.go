package controllers

import (
	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	Service *services.SearchService
}

func NewSearchController(service *services.SearchService) SearchController {
	return SearchController{Service: service}
}

// Search tìm thợ và công trình theo tên, không phân biệt dấu tiếng Việt
func (s SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số q")
		return
	}

	results, err := s.Service.Search(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Success(c, results)
}
