package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"congtrinh/constants"
	"congtrinh/dto"
	apperrors "congtrinh/errors"
	"congtrinh/models"
	"congtrinh/services/logger"

	"gorm.io/gorm"
)

const (
	MinPayrollYear = 2000
	MaxPayrollYear = 2100
)

// PayrollService tính lương tháng cho thợ từ dữ liệu chấm công
type PayrollService struct {
	db     *gorm.DB
	logger logger.Logger
}

type PayrollServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewPayrollService(opts PayrollServiceOptions) *PayrollService {
	return &PayrollService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// MonthWindow trả về khoảng nửa mở [đầu tháng, đầu tháng sau) theo UTC
func MonthWindow(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidMonth,
			fmt.Sprintf("tháng %d không hợp lệ", month), nil)
	}
	if year < MinPayrollYear || year > MaxPayrollYear {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidYear,
			fmt.Sprintf("năm %d không hợp lệ", year), nil)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// RoundWage làm tròn tiền công về VND nguyên, nửa làm tròn ra xa 0 (math.Round)
func RoundWage(days float64, dailyRate int64) int64 {
	return int64(math.Round(days * float64(dailyRate)))
}

// ComputeWorkerPayroll là phần thuần túy của phép tính lương:
// totalDays cộng dồn dayFraction, tiền ăn tra theo Meal độc lập với dayFraction,
// phụ cấp tháng cộng đúng một lần kể cả khi không có công nào trong tháng.
func ComputeWorkerPayroll(worker models.Worker, year, month int, rows []models.Attendance) dto.WorkerPayroll {
	var totalDays float64
	var mealTotal int64

	for _, row := range rows {
		totalDays += row.DayFraction
		mealTotal += constants.MealCosts[row.Meal]
	}

	wageTotal := RoundWage(totalDays, worker.DailyRate)
	allowance := worker.MonthlyAllowance
	var adjustments int64

	return dto.WorkerPayroll{
		WorkerID:    worker.ID,
		FullName:    worker.FullName,
		Role:        worker.Role,
		Year:        year,
		Month:       month,
		TotalDays:   totalDays,
		WageTotal:   wageTotal,
		MealTotal:   mealTotal,
		Allowance:   allowance,
		Adjustments: adjustments,
		Payable:     wageTotal + mealTotal + allowance + adjustments,
	}
}

// CalculateWorkerMonth tính lương một thợ cho một tháng cụ thể
func (s *PayrollService) CalculateWorkerMonth(ctx context.Context, workerID uint, year, month int) (dto.WorkerPayroll, error) {
	start, end, err := MonthWindow(year, month)
	if err != nil {
		return dto.WorkerPayroll{}, err
	}

	var worker models.Worker
	if err := s.db.WithContext(ctx).First(&worker, workerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WorkerPayroll{}, apperrors.NewAppError(apperrors.ErrCodeWorkerNotFound,
				fmt.Sprintf("không tìm thấy thợ %d", workerID), err)
		}
		return dto.WorkerPayroll{}, apperrors.NewAppError(apperrors.ErrCodeDBError,
			"lỗi truy vấn thợ", err)
	}

	var rows []models.Attendance
	if err := s.db.WithContext(ctx).
		Where("worker_id = ? AND date >= ? AND date < ?", workerID, start, end).
		Find(&rows).Error; err != nil {
		return dto.WorkerPayroll{}, apperrors.NewAppError(apperrors.ErrCodeDBError,
			"lỗi truy vấn chấm công", err)
	}

	return ComputeWorkerPayroll(worker, year, month, rows), nil
}

// CalculateMonthlyReport tính lương cho toàn bộ thợ đang hoạt động, mỗi thợ một
// goroutine; thợ nào tính lỗi thì thành dòng 0 đồng thay vì hỏng cả bảng.
func (s *PayrollService) CalculateMonthlyReport(ctx context.Context, year, month int) (dto.MonthlyPayrollReport, error) {
	if _, _, err := MonthWindow(year, month); err != nil {
		return dto.MonthlyPayrollReport{}, err
	}

	var workers []models.Worker
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&workers).Error; err != nil {
		return dto.MonthlyPayrollReport{}, apperrors.NewAppError(apperrors.ErrCodeDBError,
			"lỗi truy vấn danh sách thợ", err)
	}

	rows := make([]dto.WorkerPayroll, len(workers))
	var wg sync.WaitGroup
	for i, w := range workers {
		wg.Add(1)
		go func(i int, w models.Worker) {
			defer wg.Done()
			payroll, err := s.CalculateWorkerMonth(ctx, w.ID, year, month)
			if err != nil {
				s.logger.Error("lỗi tính lương thợ %d (%s): %v", w.ID, w.FullName, err)
				rows[i] = dto.WorkerPayroll{
					WorkerID:   w.ID,
					FullName:   w.FullName,
					Role:       w.Role,
					Year:       year,
					Month:      month,
					Failed:     true,
					FailReason: err.Error(),
				}
				return
			}
			rows[i] = payroll
		}(i, w)
	}
	wg.Wait()

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FullName != rows[j].FullName {
			return rows[i].FullName < rows[j].FullName
		}
		return rows[i].WorkerID < rows[j].WorkerID
	})

	var grandTotal int64
	for _, r := range rows {
		grandTotal += r.Payable
	}

	return dto.MonthlyPayrollReport{
		Year:       year,
		Month:      month,
		Workers:    rows,
		GrandTotal: grandTotal,
	}, nil
}

// MonthlyDetail trả về bảng chấm công chi tiết theo từng thợ trong một tháng,
// dùng làm dữ liệu cho các sheet xuất file
func (s *PayrollService) MonthlyDetail(ctx context.Context, year, month int, workerID *uint) ([]dto.WorkerAttendanceDetail, error) {
	start, end, err := MonthWindow(year, month)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).
		Preload("Worker").
		Preload("Project").
		Where("date >= ? AND date < ?", start, end)
	if workerID != nil {
		query = query.Where("worker_id = ?", *workerID)
	}

	var rows []models.Attendance
	if err := query.Find(&rows).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn chấm công", err)
	}

	return GroupAttendanceDetail(rows), nil
}

// GroupAttendanceDetail gom các dòng chấm công theo thợ, sắp ổn định theo tên
// thợ rồi đến ngày tăng dần để kết quả xuất file luôn cố định
func GroupAttendanceDetail(rows []models.Attendance) []dto.WorkerAttendanceDetail {
	byWorker := make(map[uint]*dto.WorkerAttendanceDetail)

	for _, row := range rows {
		d, ok := byWorker[row.WorkerID]
		if !ok {
			d = &dto.WorkerAttendanceDetail{
				WorkerID: row.WorkerID,
				FullName: row.Worker.FullName,
				Role:     row.Worker.Role,
			}
			byWorker[row.WorkerID] = d
		}
		d.TotalDays += row.DayFraction
		d.Days = append(d.Days, dto.AttendanceDay{
			Date:        row.Date.UTC().Format("2006-01-02"),
			DayFraction: row.DayFraction,
			Meal:        row.Meal,
			MealCost:    constants.MealCosts[row.Meal],
			ProjectName: row.Project.Name,
		})
	}

	details := make([]dto.WorkerAttendanceDetail, 0, len(byWorker))
	for _, d := range byWorker {
		sort.SliceStable(d.Days, func(i, j int) bool {
			return d.Days[i].Date < d.Days[j].Date
		})
		details = append(details, *d)
	}

	sort.SliceStable(details, func(i, j int) bool {
		if details[i].FullName != details[j].FullName {
			return details[i].FullName < details[j].FullName
		}
		return details[i].WorkerID < details[j].WorkerID
	})

	return details
}
