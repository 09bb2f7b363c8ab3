package services

import (
	"time"

	"congtrinh/models"
	"congtrinh/services/logger"

	"gorm.io/gorm"
)

// ExternalHireService xử lý nghiệp vụ thuê ngoài ngoài phạm vi CRUD
type ExternalHireService struct {
	db     *gorm.DB
	logger logger.Logger
}

type ExternalHireServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewExternalHireService(opts ExternalHireServiceOptions) *ExternalHireService {
	return &ExternalHireService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// DeactivateExpiredHires xóa mềm các hợp đồng thuê ngoài đã quá ngày kết thúc;
// trả về số bản ghi bị tắt
func (s *ExternalHireService) DeactivateExpiredHires() (int64, error) {
	result := s.db.Model(&models.ExternalHire{}).
		Where("is_active = ? AND end_date IS NOT NULL AND end_date < ?", true, time.Now().UTC()).
		Update("is_active", false)
	if result.Error != nil {
		s.logger.Error("lỗi quét thuê ngoài hết hạn: %v", result.Error)
		return 0, result.Error
	}

	if result.RowsAffected > 0 {
		s.logger.Info("đã tắt %d hợp đồng thuê ngoài hết hạn", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
