package validator

import (
	"testing"
	"time"

	"congtrinh/constants"
	apperrors "congtrinh/errors"
	"congtrinh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWorker(t *testing.T) {
	valid := models.Worker{
		FullName:  "Nguyễn Văn An",
		Role:      constants.WorkerRoleTeamLead,
		DailyRate: 500000,
	}
	assert.NoError(t, ValidateWorker(&valid))

	tests := []struct {
		name     string
		mutate   func(w *models.Worker)
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "thiếu tên",
			mutate:   func(w *models.Worker) { w.FullName = "" },
			wantCode: apperrors.ErrCodeRequiredField,
		},
		{
			name:     "vai trò lạ",
			mutate:   func(w *models.Worker) { w.Role = "foreman" },
			wantCode: apperrors.ErrCodeInvalidRole,
		},
		{
			name:     "đơn giá âm",
			mutate:   func(w *models.Worker) { w.DailyRate = -1 },
			wantCode: apperrors.ErrCodeInvalidAmount,
		},
		{
			name:     "phụ cấp âm",
			mutate:   func(w *models.Worker) { w.MonthlyAllowance = -1 },
			wantCode: apperrors.ErrCodeInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := valid
			tt.mutate(&w)
			err := ValidateWorker(&w)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetAppError(err).Code)
		})
	}
}

func TestValidateAttendance(t *testing.T) {
	valid := models.Attendance{
		WorkerID:    1,
		ProjectID:   1,
		Date:        time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		DayFraction: 1,
		Meal:        constants.MealFullDay,
	}
	assert.NoError(t, ValidateAttendance(&valid))

	tests := []struct {
		name     string
		mutate   func(a *models.Attendance)
		wantCode apperrors.ErrorCode
	}{
		{
			name:     "thiếu thợ",
			mutate:   func(a *models.Attendance) { a.WorkerID = 0 },
			wantCode: apperrors.ErrCodeRequiredField,
		},
		{
			name:     "thiếu công trình",
			mutate:   func(a *models.Attendance) { a.ProjectID = 0 },
			wantCode: apperrors.ErrCodeRequiredField,
		},
		{
			name:     "thiếu ngày",
			mutate:   func(a *models.Attendance) { a.Date = time.Time{} },
			wantCode: apperrors.ErrCodeInvalidDate,
		},
		{
			name:     "số công âm",
			mutate:   func(a *models.Attendance) { a.DayFraction = -0.5 },
			wantCode: apperrors.ErrCodeInvalidFraction,
		},
		{
			name:     "số công quá một",
			mutate:   func(a *models.Attendance) { a.DayFraction = 1.5 },
			wantCode: apperrors.ErrCodeInvalidFraction,
		},
		{
			name:     "suất ăn lạ",
			mutate:   func(a *models.Attendance) { a.Meal = "BREAKFAST" },
			wantCode: apperrors.ErrCodeInvalidMeal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid
			tt.mutate(&a)
			err := ValidateAttendance(&a)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetAppError(err).Code)
		})
	}
}

func TestValidateExpense(t *testing.T) {
	valid := models.Expense{
		ProjectID: 1,
		Category:  constants.ExpenseCategoryTransport,
		Amount:    2000000,
	}
	assert.NoError(t, ValidateExpense(&valid))

	badCategory := valid
	badCategory.Category = "linh-tinh"
	err := ValidateExpense(&badCategory)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCategory, apperrors.GetAppError(err).Code)

	negative := valid
	negative.Amount = -1
	err = ValidateExpense(&negative)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidAmount, apperrors.GetAppError(err).Code)
}

func TestValidateDateRange(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateDateRange(start, nil))

	after := start.AddDate(0, 1, 0)
	assert.NoError(t, ValidateDateRange(start, &after))

	same := start
	assert.NoError(t, ValidateDateRange(start, &same))

	before := start.AddDate(0, 0, -1)
	err := ValidateDateRange(start, &before)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetAppError(err).Code)
}

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Email:       "an@example.com",
		Password:    "secret123",
		PhoneNumber: "0901234567",
		Role:        constants.RoleAccountant,
	}
	assert.NoError(t, ValidateUser(&valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, ValidateUser(&badEmail))

	shortPassword := valid
	shortPassword.Password = "123"
	assert.Error(t, ValidateUser(&shortPassword))

	badPhone := valid
	badPhone.PhoneNumber = "12345"
	assert.Error(t, ValidateUser(&badPhone))

	badRole := valid
	badRole.Role = 9
	assert.Error(t, ValidateUser(&badRole))
}
