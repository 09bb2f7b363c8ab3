package services

import (
	"testing"

	"congtrinh/constants"
	"congtrinh/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeCashflowTotals(t *testing.T) {
	receipts := []models.Receipt{
		{Amount: 50000000},
		{Amount: 30000000},
	}
	expenses := []models.Expense{
		{Category: constants.ExpenseCategoryTransport, Amount: 2000000},
		{Category: constants.ExpenseCategoryMeal, Amount: 1500000},
	}
	materials := []models.MaterialPurchase{
		{Total: 12000000},
		{Total: 8000000},
	}
	attendances := []models.Attendance{
		{DayFraction: 1, Worker: models.Worker{DailyRate: 420000}},
		{DayFraction: 0.5, Worker: models.Worker{DailyRate: 300000}},
	}

	totals := ComputeCashflowTotals(receipts, expenses, materials, attendances)

	assert.Equal(t, int64(80000000), totals.TotalReceipts)
	assert.Equal(t, int64(3500000), totals.TotalExpenses)
	assert.Equal(t, int64(20000000), totals.TotalMaterials)
	assert.Equal(t, int64(570000), totals.WageEstimated)
	assert.Equal(t, int64(80000000), totals.CashIn)
	assert.Equal(t, int64(23500000), totals.CashOut)
	assert.Equal(t, int64(56430000), totals.GrossProfitEstimated)

	// Lãi gộp luôn khớp công thức thu - ra - tiền công
	assert.Equal(t, totals.CashIn-totals.CashOut-totals.WageEstimated, totals.GrossProfitEstimated)
}

func TestComputeCashflowTotalsEmpty(t *testing.T) {
	totals := ComputeCashflowTotals(nil, nil, nil, nil)

	assert.Equal(t, int64(0), totals.CashIn)
	assert.Equal(t, int64(0), totals.CashOut)
	assert.Equal(t, int64(0), totals.GrossProfitEstimated)
}

func TestComputeCashflowTotalsRoundsPerRow(t *testing.T) {
	// Hai nửa công ở đơn giá lẻ: mỗi dòng làm tròn riêng rồi mới cộng,
	// khác với làm tròn trên tổng công
	attendances := []models.Attendance{
		{DayFraction: 0.5, Worker: models.Worker{DailyRate: 333333}},
		{DayFraction: 0.5, Worker: models.Worker{DailyRate: 333333}},
	}

	totals := ComputeCashflowTotals(nil, nil, nil, attendances)

	// round(166666.5) = 166667 mỗi dòng
	assert.Equal(t, int64(333334), totals.WageEstimated)
}

func TestComputeCashflowTotalsMealsExcluded(t *testing.T) {
	attendances := []models.Attendance{
		{DayFraction: 1, Meal: constants.MealFullDay, Worker: models.Worker{DailyRate: 400000}},
	}

	totals := ComputeCashflowTotals(nil, nil, nil, attendances)

	// Ước tính tiền công không cộng tiền ăn
	assert.Equal(t, int64(400000), totals.WageEstimated)
}
