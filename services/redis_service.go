package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache key cho các danh sách hay đọc; xóa khi có ghi
const (
	CacheKeyWorkersAll  = "workers:all"
	CacheKeyProjectsAll = "projects:all"
	CacheKeyDashboard   = "dashboard:overview"
)

// CacheKeyPayroll tạo key cache cho bảng lương một tháng
func CacheKeyPayroll(year, month int) string {
	return fmt.Sprintf("payroll:%04d-%02d", year, month)
}

// GetFromRedis đọc và giải mã một giá trị cache. found=false nghĩa là key
// không tồn tại; giá trị rỗng hợp lệ (hệ thống chưa có dữ liệu) vẫn là found=true.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	return decodeCached(cachedData, err, target)
}

// decodeCached tách riêng phần phân loại kết quả Get để kiểm thử không cần Redis
func decodeCached(data string, err error, target interface{}) (bool, error) {
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(data), target); err != nil {
		return false, err
	}
	return true, nil
}

// Hàm lưu dữ liệu vào Redis
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// Hàm xóa cache Redis
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}
