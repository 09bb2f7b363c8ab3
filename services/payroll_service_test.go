package services

import (
	"testing"
	"time"

	"congtrinh/constants"
	apperrors "congtrinh/errors"
	"congtrinh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   apperrors.ErrorCode
	}{
		{
			name:      "tháng thường",
			year:      2025,
			month:     3,
			wantStart: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "tháng 12 lăn sang năm sau",
			year:      2025,
			month:     12,
			wantStart: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "tháng 2 năm nhuận",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{name: "tháng 0", year: 2025, month: 0, wantErr: apperrors.ErrCodeInvalidMonth},
		{name: "tháng 13", year: 2025, month: 13, wantErr: apperrors.ErrCodeInvalidMonth},
		{name: "năm quá nhỏ", year: 1999, month: 1, wantErr: apperrors.ErrCodeInvalidYear},
		{name: "năm quá lớn", year: 2101, month: 1, wantErr: apperrors.ErrCodeInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := MonthWindow(tt.year, tt.month)
			if tt.wantErr != "" {
				require.Error(t, err)
				appErr := apperrors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.wantErr, appErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestMonthWindowHalfOpen(t *testing.T) {
	start, end, err := MonthWindow(2025, 1)
	require.NoError(t, err)

	lastOfJanuary := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)
	firstOfFebruary := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, !lastOfJanuary.Before(start) && lastOfJanuary.Before(end))
	assert.False(t, firstOfFebruary.Before(end))
}

func TestRoundWage(t *testing.T) {
	tests := []struct {
		name string
		days float64
		rate int64
		want int64
	}{
		{name: "tròn ngày", days: 3, rate: 420000, want: 1260000},
		{name: "nửa ngày chẵn", days: 0.5, rate: 300000, want: 150000},
		{name: "nửa đồng làm tròn lên", days: 1.5, rate: 333333, want: 500000},
		{name: "nửa đồng lẻ", days: 0.5, rate: 300001, want: 150001},
		{name: "không công", days: 0, rate: 500000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWage(tt.days, tt.rate))
		})
	}
}

func TestComputeWorkerPayroll(t *testing.T) {
	mason := models.Worker{ID: 1, FullName: "Trần Văn Bình", Role: constants.WorkerRoleMason, DailyRate: 420000}
	teamLead := models.Worker{ID: 2, FullName: "Nguyễn Văn An", Role: constants.WorkerRoleTeamLead, DailyRate: 500000, MonthlyAllowance: 1500000}

	fullDay := func(meal string) models.Attendance {
		return models.Attendance{DayFraction: 1, Meal: meal}
	}
	halfDay := func(meal string) models.Attendance {
		return models.Attendance{DayFraction: 0.5, Meal: meal}
	}

	t.Run("thợ chính ba công đủ suất ăn", func(t *testing.T) {
		rows := []models.Attendance{
			fullDay(constants.MealFullDay),
			fullDay(constants.MealFullDay),
			fullDay(constants.MealFullDay),
		}
		got := ComputeWorkerPayroll(mason, 2025, 3, rows)

		assert.Equal(t, 3.0, got.TotalDays)
		assert.Equal(t, int64(1260000), got.WageTotal)
		assert.Equal(t, int64(240000), got.MealTotal)
		assert.Equal(t, int64(0), got.Allowance)
		assert.Equal(t, int64(1500000), got.Payable)
	})

	t.Run("đội trưởng có phụ cấp", func(t *testing.T) {
		rows := []models.Attendance{
			fullDay(constants.MealFullDay),
			fullDay(constants.MealFullDay),
			fullDay(constants.MealFullDay),
			fullDay(constants.MealFullDay),
			halfDay(constants.MealHalfDay),
		}
		got := ComputeWorkerPayroll(teamLead, 2025, 3, rows)

		assert.Equal(t, 4.5, got.TotalDays)
		assert.Equal(t, int64(2250000), got.WageTotal)
		assert.Equal(t, int64(360000), got.MealTotal)
		assert.Equal(t, int64(1500000), got.Allowance)
		assert.Equal(t, int64(4110000), got.Payable)
	})

	t.Run("không có công vẫn được phụ cấp", func(t *testing.T) {
		got := ComputeWorkerPayroll(teamLead, 2025, 3, nil)

		assert.Equal(t, 0.0, got.TotalDays)
		assert.Equal(t, int64(0), got.WageTotal)
		assert.Equal(t, int64(1500000), got.Payable)
	})

	t.Run("tiền ăn không phụ thuộc phần công", func(t *testing.T) {
		got := ComputeWorkerPayroll(mason, 2025, 3, []models.Attendance{
			halfDay(constants.MealFullDay),
		})

		assert.Equal(t, int64(80000), got.MealTotal)
		assert.Equal(t, int64(210000), got.WageTotal)
	})

	t.Run("kết quả không phụ thuộc thứ tự dòng chấm công", func(t *testing.T) {
		rows := []models.Attendance{
			fullDay(constants.MealFullDay),
			halfDay(constants.MealNone),
			fullDay(constants.MealHalfDay),
		}
		reversed := []models.Attendance{rows[2], rows[1], rows[0]}

		assert.Equal(t, ComputeWorkerPayroll(mason, 2025, 3, rows), ComputeWorkerPayroll(mason, 2025, 3, reversed))
	})

	t.Run("làm tròn tổng công mới nhân đơn giá", func(t *testing.T) {
		worker := models.Worker{ID: 3, FullName: "Lê Văn Cường", Role: constants.WorkerRoleHelper, DailyRate: 333333}
		got := ComputeWorkerPayroll(worker, 2025, 3, []models.Attendance{
			fullDay(constants.MealNone),
			halfDay(constants.MealNone),
		})

		// 1.5 x 333333 = 499999.5, nửa đồng làm tròn ra xa 0
		assert.Equal(t, int64(500000), got.WageTotal)
	})
}

func TestGroupAttendanceDetail(t *testing.T) {
	an := models.Worker{ID: 1, FullName: "Nguyễn Văn An", Role: constants.WorkerRoleTeamLead}
	binh := models.Worker{ID: 2, FullName: "Trần Văn Bình", Role: constants.WorkerRoleMason}
	project := models.Project{ID: 1, Name: "Nhà anh Tư"}

	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	}

	rows := []models.Attendance{
		{WorkerID: 2, Worker: binh, Project: project, Date: day(5), DayFraction: 1, Meal: constants.MealFullDay},
		{WorkerID: 1, Worker: an, Project: project, Date: day(10), DayFraction: 0.5, Meal: constants.MealHalfDay},
		{WorkerID: 1, Worker: an, Project: project, Date: day(2), DayFraction: 1, Meal: constants.MealFullDay},
	}

	details := GroupAttendanceDetail(rows)
	require.Len(t, details, 2)

	// Sắp theo tên thợ, trong mỗi thợ theo ngày tăng dần
	assert.Equal(t, "Nguyễn Văn An", details[0].FullName)
	assert.Equal(t, 1.5, details[0].TotalDays)
	require.Len(t, details[0].Days, 2)
	assert.Equal(t, "2025-03-02", details[0].Days[0].Date)
	assert.Equal(t, "2025-03-10", details[0].Days[1].Date)
	assert.Equal(t, int64(40000), details[0].Days[1].MealCost)

	assert.Equal(t, "Trần Văn Bình", details[1].FullName)
	assert.Equal(t, 1.0, details[1].TotalDays)
	assert.Equal(t, "Nhà anh Tư", details[1].Days[0].ProjectName)
}

func TestGroupAttendanceDetailEmpty(t *testing.T) {
	details := GroupAttendanceDetail(nil)
	assert.Empty(t, details)
}
