package middleware

import (
	"strings"

	"congtrinh/constants"
	"congtrinh/errors"
	"congtrinh/response"
	"congtrinh/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware xác thực chữ ký token rồi gác vai trò. Vai trò truyền vào là
// các hằng constants.RoleAdmin / RoleAccountant / RoleSiteManager; không truyền
// vai trò nào thì chỉ cần token hợp lệ.
func AuthMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.VerifyAccessToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 && !roleAllowed(userInfo.Role, roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("userID", userInfo.UserId)
		c.Set("userRole", userInfo.Role)
		c.Next()
	}
}

// RoleMiddleware gác vai trò cho route nằm sau AuthMiddleware
func RoleMiddleware(roles ...int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("userRole")
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !roleAllowed(userRole.(int), roles) {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func roleAllowed(role int, allowed []int) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// AdminOnly là lối tắt cho các route chỉ dành cho admin
func AdminOnly() gin.HandlerFunc {
	return AuthMiddleware(constants.RoleAdmin)
}

// ErrorHandler đổi lỗi gom trong context thành response theo envelope chung
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			if appErr, ok := err.(*errors.AppError); ok {
				response.Error(c, 0, appErr.Message)
				return
			}

			response.ServerError(c)
		}
	}
}
