package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAllowanceForRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int64
	}{
		{name: "đội trưởng có phụ cấp mặc định", role: WorkerRoleTeamLead, want: DefaultMonthlyAllowance},
		{name: "thợ chính không có phụ cấp", role: WorkerRoleMason, want: 0},
		{name: "phụ hồ không có phụ cấp", role: WorkerRoleHelper, want: 0},
		{name: "thuê ngoài không có phụ cấp", role: WorkerRoleExternalHire, want: 0},
		{name: "vai trò lạ không có phụ cấp", role: "foreman", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultAllowanceForRole(tt.role))
		})
	}
}

func TestDefaultDayRates(t *testing.T) {
	// Đơn giá mặc định tra theo vai trò, vai trò lạ về 0
	assert.Equal(t, int64(500000), DefaultDayRates[WorkerRoleTeamLead])
	assert.Equal(t, int64(420000), DefaultDayRates[WorkerRoleMason])
	assert.Equal(t, int64(300000), DefaultDayRates[WorkerRoleHelper])
	assert.Equal(t, int64(350000), DefaultDayRates[WorkerRoleExternalHire])
	assert.Equal(t, int64(0), DefaultDayRates["foreman"])
}

func TestIsValidMeal(t *testing.T) {
	assert.True(t, IsValidMeal(MealFullDay))
	assert.True(t, IsValidMeal(MealHalfDay))
	assert.True(t, IsValidMeal(MealNone))
	assert.False(t, IsValidMeal("BREAKFAST"))
	assert.False(t, IsValidMeal(""))
}
