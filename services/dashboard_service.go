package services

import (
	"context"
	"sort"

	"congtrinh/dto"
	apperrors "congtrinh/errors"
	"congtrinh/models"
	"congtrinh/services/logger"

	"gorm.io/gorm"
)

// RecentActivityLimit - số mục tối đa trong danh sách hoạt động gần đây
const RecentActivityLimit = 5

// DashboardService gom số liệu toàn hệ thống cho màn hình tổng quan
type DashboardService struct {
	db     *gorm.DB
	logger logger.Logger
}

type DashboardServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	return &DashboardService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// MergeRecentActivity trộn các mục hoạt động, sắp theo ngày giảm dần và cắt
// còn RecentActivityLimit mục
func MergeRecentActivity(items []dto.ActivityItem) []dto.ActivityItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	if len(items) > RecentActivityLimit {
		items = items[:RecentActivityLimit]
	}
	return items
}

// Overview đếm và cộng tổng trên toàn bộ dữ liệu; các bản ghi xóa mềm bị loại
// khỏi tổng tiền, netProfit = thu - chi - vật tư - thuê ngoài
func (s *DashboardService) Overview(ctx context.Context) (dto.DashboardOverview, error) {
	db := s.db.WithContext(ctx)
	var overview dto.DashboardOverview

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Worker{}, &overview.Counts.Workers},
		{&models.Project{}, &overview.Counts.Projects},
		{&models.Attendance{}, &overview.Counts.Attendances},
		{&models.Receipt{}, &overview.Counts.Receipts},
		{&models.Expense{}, &overview.Counts.Expenses},
		{&models.MaterialPurchase{}, &overview.Counts.Materials},
		{&models.ExternalHire{}, &overview.Counts.ExternalHires},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return dto.DashboardOverview{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi đếm dữ liệu", err)
		}
	}

	sums := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{db.Model(&models.Receipt{}).Select("COALESCE(SUM(amount), 0)"), &overview.Totals.Receipts},
		{db.Model(&models.Expense{}).Select("COALESCE(SUM(amount), 0)"), &overview.Totals.Expenses},
		{materialsTotalQuery(db), &overview.Totals.Materials},
		{hiresTotalQuery(db), &overview.Totals.ExternalHires},
	}
	for _, q := range sums {
		if err := q.query.Scan(q.dest).Error; err != nil {
			return dto.DashboardOverview{}, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi cộng tổng", err)
		}
	}

	overview.Totals.NetProfit = overview.Totals.Receipts -
		overview.Totals.Expenses - overview.Totals.Materials - overview.Totals.ExternalHires

	activity, err := s.recentActivity(ctx)
	if err != nil {
		return dto.DashboardOverview{}, err
	}
	overview.RecentActivity = activity

	return overview, nil
}

// materialsTotalQuery cộng tổng tiền vật tư, loại bản ghi đã xóa mềm
func materialsTotalQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.MaterialPurchase{}).
		Select("COALESCE(SUM(total), 0)").
		Where("is_active = ?", true)
}

// hiresTotalQuery cộng tổng tiền thuê ngoài, loại bản ghi đã xóa mềm
func hiresTotalQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ExternalHire{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("is_active = ?", true)
}

func (s *DashboardService) recentActivity(ctx context.Context) ([]dto.ActivityItem, error) {
	db := s.db.WithContext(ctx)
	var items []dto.ActivityItem

	var receipts []models.Receipt
	if err := db.Order("date DESC").Limit(RecentActivityLimit).Find(&receipts).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn phiếu thu", err)
	}
	for _, r := range receipts {
		items = append(items, dto.ActivityItem{
			Type:        "receipt",
			Date:        r.Date,
			ProjectID:   r.ProjectID,
			Description: r.Description,
			Amount:      r.Amount,
		})
	}

	var materials []models.MaterialPurchase
	if err := db.Where("is_active = ?", true).Order("date DESC").Limit(RecentActivityLimit).Find(&materials).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn vật tư", err)
	}
	for _, m := range materials {
		items = append(items, dto.ActivityItem{
			Type:        "material",
			Date:        m.Date,
			ProjectID:   m.ProjectID,
			Description: m.ItemName,
			Amount:      m.Total,
		})
	}

	var attendances []models.Attendance
	if err := db.Preload("Worker").Order("date DESC").Limit(RecentActivityLimit).Find(&attendances).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn chấm công", err)
	}
	for _, a := range attendances {
		items = append(items, dto.ActivityItem{
			Type:        "attendance",
			Date:        a.Date,
			ProjectID:   a.ProjectID,
			Description: a.Worker.FullName,
		})
	}

	var hires []models.ExternalHire
	if err := db.Where("is_active = ?", true).Order("start_date DESC").Limit(RecentActivityLimit).Find(&hires).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn thuê ngoài", err)
	}
	for _, h := range hires {
		items = append(items, dto.ActivityItem{
			Type:        "external-hire",
			Date:        h.StartDate,
			ProjectID:   h.ProjectID,
			Description: h.Title,
			Amount:      h.Amount,
		})
	}

	return MergeRecentActivity(items), nil
}
