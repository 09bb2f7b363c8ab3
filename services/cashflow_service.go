package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"congtrinh/dto"
	apperrors "congtrinh/errors"
	"congtrinh/models"
	"congtrinh/services/logger"

	"gorm.io/gorm"
)

// CashflowService tổng hợp dòng tiền theo từng công trình
type CashflowService struct {
	db     *gorm.DB
	logger logger.Logger
}

type CashflowServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewCashflowService(opts CashflowServiceOptions) *CashflowService {
	return &CashflowService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// ComputeCashflowTotals là phần thuần túy: cộng thu chi và ước tính tiền công
// theo từng dòng chấm công (làm tròn theo dòng, không gồm tiền ăn và phụ cấp).
func ComputeCashflowTotals(receipts []models.Receipt, expenses []models.Expense,
	materials []models.MaterialPurchase, attendances []models.Attendance) dto.CashflowTotals {

	var totals dto.CashflowTotals

	for _, r := range receipts {
		totals.TotalReceipts += r.Amount
	}
	for _, e := range expenses {
		totals.TotalExpenses += e.Amount
	}
	for _, m := range materials {
		totals.TotalMaterials += m.Total
	}
	for _, a := range attendances {
		totals.WageEstimated += RoundWage(a.DayFraction, a.Worker.DailyRate)
	}

	totals.CashIn = totals.TotalReceipts
	totals.CashOut = totals.TotalExpenses + totals.TotalMaterials
	totals.GrossProfitEstimated = totals.CashIn - totals.CashOut - totals.WageEstimated
	return totals
}

// ProjectCashflow tổng hợp dòng tiền một công trình, tùy chọn giới hạn trong
// một tháng; không có tháng thì tính toàn bộ thời gian. Bốn truy vấn chạy
// song song và gom kết quả lại.
// activeMaterialsQuery chỉ lấy vật tư chưa xóa mềm cho các tổng hợp dòng tiền
func activeMaterialsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.MaterialPurchase{}).Where("is_active = ?", true)
}

func (s *CashflowService) ProjectCashflow(ctx context.Context, projectID uint, year, month *int) (dto.ProjectCashflow, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProjectCashflow{}, apperrors.NewAppError(apperrors.ErrCodeProjectNotFound,
				fmt.Sprintf("không tìm thấy công trình %d", projectID), err)
		}
		return dto.ProjectCashflow{}, apperrors.NewAppError(apperrors.ErrCodeDBError,
			"lỗi truy vấn công trình", err)
	}

	scoped := func(q *gorm.DB) (*gorm.DB, error) {
		q = q.Where("project_id = ?", projectID)
		if year != nil && month != nil {
			start, end, err := MonthWindow(*year, *month)
			if err != nil {
				return nil, err
			}
			q = q.Where("date >= ? AND date < ?", start, end)
		}
		return q, nil
	}

	// Kiểm tra tham số tháng trước khi fan-out
	if year != nil && month != nil {
		if _, _, err := MonthWindow(*year, *month); err != nil {
			return dto.ProjectCashflow{}, err
		}
	}

	var (
		receipts    []models.Receipt
		expenses    []models.Expense
		materials   []models.MaterialPurchase
		attendances []models.Attendance
	)

	queries := []func() error{
		func() error {
			q, err := scoped(s.db.WithContext(ctx).Model(&models.Receipt{}))
			if err != nil {
				return err
			}
			return q.Order("date ASC").Find(&receipts).Error
		},
		func() error {
			q, err := scoped(s.db.WithContext(ctx).Model(&models.Expense{}))
			if err != nil {
				return err
			}
			return q.Order("date ASC").Find(&expenses).Error
		},
		func() error {
			q, err := scoped(activeMaterialsQuery(s.db.WithContext(ctx)))
			if err != nil {
				return err
			}
			return q.Order("date ASC").Find(&materials).Error
		},
		func() error {
			q, err := scoped(s.db.WithContext(ctx).Model(&models.Attendance{}).Preload("Worker"))
			if err != nil {
				return err
			}
			return q.Find(&attendances).Error
		},
	}

	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		go func(i int, query func() error) {
			defer wg.Done()
			errs[i] = query()
		}(i, query)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.logger.Error("lỗi truy vấn dòng tiền công trình %d: %v", projectID, err)
			return dto.ProjectCashflow{}, apperrors.NewAppError(apperrors.ErrCodeDBError,
				"lỗi truy vấn dữ liệu dòng tiền", err)
		}
	}

	return dto.ProjectCashflow{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Year:        year,
		Month:       month,
		Totals:      ComputeCashflowTotals(receipts, expenses, materials, attendances),
		Details: dto.CashflowDetails{
			Receipts:  receipts,
			Expenses:  expenses,
			Materials: materials,
		},
	}, nil
}
