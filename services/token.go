package services

import (
	"encoding/json"
	"strings"

	"congtrinh/constants"
	"congtrinh/errors"

	"github.com/dgrijalva/jwt-go"
)

// decodeUserInfo đọc phần payload của token và trả về UserInfo.
// Chữ ký đã được AuthMiddleware xác thực trước đó nên ở đây chỉ giải mã claims.
func decodeUserInfo(tokenString string) (UserInfo, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	if claims.UserInfo.UserId == 0 {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	return claims.UserInfo, nil
}

// GetUserIDFromToken lấy userID và role từ token; role phải là một trong các
// vai trò của hệ thống (admin, kế toán, quản lý công trình)
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	userInfo, err := decodeUserInfo(tokenString)
	if err != nil {
		return 0, 0, err
	}

	switch userInfo.Role {
	case constants.RoleAdmin, constants.RoleAccountant, constants.RoleSiteManager:
	default:
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidRole, "Role trong token không hợp lệ", nil)
	}

	return userInfo.UserId, userInfo.Role, nil
}

// VerifyAccessToken xác thực chữ ký và thời hạn của access token.
// Các helper giải mã ở trên chỉ dùng phía sau middleware đã gọi hàm này.
func VerifyAccessToken(tokenString string) (UserInfo, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Thuật toán ký không hợp lệ", nil)
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid {
		return UserInfo{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ hoặc đã hết hạn", err)
	}
	return claims.UserInfo, nil
}

// GetIDFromToken lấy userID từ token, không quan tâm role
func GetIDFromToken(tokenString string) (uint, error) {
	userInfo, err := decodeUserInfo(tokenString)
	if err != nil {
		return 0, err
	}
	return userInfo.UserId, nil
}
