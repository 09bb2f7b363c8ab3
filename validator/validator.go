package validator

import (
	"regexp"
	"time"

	"congtrinh/constants"
	"congtrinh/errors"
	"congtrinh/models"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateWorker validate thông tin thợ
func ValidateWorker(worker *models.Worker) error {
	if worker.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên thợ không được để trống", nil)
	}

	if !constants.IsValidWorkerRole(worker.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Vai trò thợ không hợp lệ: "+worker.Role, nil)
	}

	if worker.DailyRate < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Đơn giá công nhật không được âm", nil)
	}

	if worker.MonthlyAllowance < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Phụ cấp tháng không được âm", nil)
	}

	return nil
}

// ValidateAttendance validate một lần chấm công
func ValidateAttendance(attendance *models.Attendance) error {
	if attendance.WorkerID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID thợ không được để trống", nil)
	}

	if attendance.ProjectID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID công trình không được để trống", nil)
	}

	if attendance.Date.IsZero() {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Thiếu ngày chấm công", nil)
	}

	if attendance.DayFraction < 0 || attendance.DayFraction > 1 {
		return errors.NewAppError(errors.ErrCodeInvalidFraction, "Số công phải trong khoảng [0, 1]", nil)
	}

	if !constants.IsValidMeal(attendance.Meal) {
		return errors.NewAppError(errors.ErrCodeInvalidMeal, "Suất ăn không hợp lệ: "+attendance.Meal, nil)
	}

	return nil
}

// ValidateExpense validate một khoản chi
func ValidateExpense(expense *models.Expense) error {
	if expense.ProjectID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "ID công trình không được để trống", nil)
	}

	if !constants.IsValidExpenseCategory(expense.Category) {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, "Loại chi phí không hợp lệ: "+expense.Category, nil)
	}

	return ValidateAmount(expense.Amount)
}

// ValidateAmount validate số tiền
func ValidateAmount(amount int64) error {
	if amount < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền không được âm", nil)
	}
	return nil
}

// ValidateDateRange kiểm tra ngày kết thúc không trước ngày bắt đầu
func ValidateDateRange(start time.Time, end *time.Time) error {
	if end != nil && end.Before(start) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
