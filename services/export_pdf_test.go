package services

import (
	"testing"

	"congtrinh/constants"
	"congtrinh/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVnd(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1.500"},
		{1500000, "1.500.000"},
		{4110000, "4.110.000"},
		{-250000, "-250.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatVnd(tt.amount))
	}
}

func TestPdfText(t *testing.T) {
	assert.Equal(t, "Nguyen Van An", pdfText("Nguyễn Văn An"))
	assert.Equal(t, "Bang luong", pdfText("Bảng lương"))
}

func TestGeneratePayrollPDF(t *testing.T) {
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
		},
		GrandTotal: 4110000,
	}

	pdfBytes, err := GeneratePayrollPDF(report)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateCashflowPDF(t *testing.T) {
	cf := dto.ProjectCashflow{
		ProjectID:   1,
		ProjectName: "Nhà anh Tư",
		Totals: dto.CashflowTotals{
			TotalReceipts:        80000000,
			CashIn:               80000000,
			CashOut:              23500000,
			GrossProfitEstimated: 56430000,
		},
	}

	pdfBytes, err := GenerateCashflowPDF(cf)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
