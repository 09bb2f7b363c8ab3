package controllers

import (
	"strconv"
	"time"

	apperrors "congtrinh/errors"
	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// GetUserIDFromToken lấy userID và role từ token
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	return services.GetUserIDFromToken(tokenString)
}

// GetIDFromToken lấy userID từ token
func GetIDFromToken(tokenString string) (uint, error) {
	return services.GetIDFromToken(tokenString)
}

// parsePagination đọc page/limit từ query, mặc định page=0 limit=10
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ = strconv.Atoi(pageStr)
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, _ = strconv.Atoi(limitStr)
	}
	if page < 0 {
		page = 0
	}
	if limit <= 0 {
		limit = 10
	}

	return page, limit
}

// parseDate đọc ngày dạng 2006-01-02, quy về UTC
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseYearMonth đọc year/month bắt buộc từ query
func parseYearMonth(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, "Thiếu hoặc sai tham số year")
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, "Thiếu hoặc sai tham số month")
		return 0, 0, false
	}
	return year, month, true
}

// respondServiceError quy lỗi từ service về mã HTTP tương ứng:
// not found -> 404, tham số sai -> 400, lỗi hạ tầng -> 503
func respondServiceError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		response.NotFound(c)
	case apperrors.IsInvalidArgument(err):
		response.BadRequest(c, apperrors.GetAppError(err).Message)
	case apperrors.IsInfrastructure(err):
		response.ServiceUnavailable(c)
	default:
		response.ServerError(c)
	}
}

// paginateSlice cắt trang trên một slice đã lọc trong bộ nhớ
func paginateSlice[T any](items []T, page, limit int) []T {
	start := page * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
