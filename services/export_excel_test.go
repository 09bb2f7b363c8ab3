package services

import (
	"testing"
	"time"

	"congtrinh/constants"
	"congtrinh/dto"
	"congtrinh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayrollWorkbook(t *testing.T) {
	report := dto.MonthlyPayrollReport{
		Year:  2025,
		Month: 3,
		Workers: []dto.WorkerPayroll{
			{
				WorkerID:  1,
				FullName:  "Nguyễn Văn An",
				Role:      constants.WorkerRoleTeamLead,
				TotalDays: 4.5,
				WageTotal: 2250000,
				MealTotal: 360000,
				Allowance: 1500000,
				Payable:   4110000,
			},
			{
				WorkerID:   2,
				FullName:   "Trần Văn Bình",
				Role:       constants.WorkerRoleMason,
				Failed:     true,
				FailReason: "lỗi truy vấn chấm công",
			},
		},
		GrandTotal: 4110000,
	}
	details := []dto.WorkerAttendanceDetail{
		{
			WorkerID:  1,
			FullName:  "Nguyễn Văn An",
			TotalDays: 1,
			Days: []dto.AttendanceDay{
				{Date: "2025-03-02", DayFraction: 1, Meal: constants.MealFullDay, MealCost: 80000, ProjectName: "Nhà anh Tư"},
			},
		},
	}

	f, err := BuildPayrollWorkbook(report, details)
	require.NoError(t, err)

	title, err := f.GetCellValue("BangLuong", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Bảng lương tháng 03/2025", title)

	name, err := f.GetCellValue("BangLuong", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", name)

	payable, err := f.GetCellValue("BangLuong", "H3")
	require.NoError(t, err)
	assert.Equal(t, "4110000", payable)

	note, err := f.GetCellValue("BangLuong", "I4")
	require.NoError(t, err)
	assert.Contains(t, note, "lỗi truy vấn chấm công")

	grandTotal, err := f.GetCellValue("BangLuong", "H5")
	require.NoError(t, err)
	assert.Equal(t, "4110000", grandTotal)

	projectName, err := f.GetCellValue("ChamCong", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Nhà anh Tư", projectName)
}

func TestBuildCashflowWorkbook(t *testing.T) {
	year, month := 2025, 3
	cf := dto.ProjectCashflow{
		ProjectID:   1,
		ProjectName: "Nhà anh Tư",
		Year:        &year,
		Month:       &month,
		Totals: dto.CashflowTotals{
			TotalReceipts:        80000000,
			TotalExpenses:        3500000,
			TotalMaterials:       20000000,
			WageEstimated:        570000,
			CashIn:               80000000,
			CashOut:              23500000,
			GrossProfitEstimated: 56430000,
		},
		Details: dto.CashflowDetails{
			Receipts: []models.Receipt{
				{Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), Amount: 50000000, Description: "Ứng đợt 1"},
			},
			Materials: []models.MaterialPurchase{
				{Date: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), ItemName: "Xi măng", Total: 12000000},
			},
		},
	}

	f, err := BuildCashflowWorkbook(cf)
	require.NoError(t, err)

	title, err := f.GetCellValue("DongTien", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Dòng tiền công trình: Nhà anh Tư - tháng 03/2025", title)

	grossProfit, err := f.GetCellValue("DongTien", "B8")
	require.NoError(t, err)
	assert.Equal(t, "56430000", grossProfit)

	receiptDate, err := f.GetCellValue("PhieuThu", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", receiptDate)

	itemName, err := f.GetCellValue("VatTu", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Xi măng", itemName)
}
