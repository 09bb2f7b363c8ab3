package services

import (
	"testing"

	"congtrinh/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// DB chỉ sinh SQL, không chạy truy vấn — để khóa hình dạng câu lệnh
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestMaterialsTotalQueryExcludesSoftDeleted(t *testing.T) {
	db := dryRunDB(t)

	var total int64
	stmt := materialsTotalQuery(db).Scan(&total).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "COALESCE(SUM(total), 0)")
	assert.Contains(t, sql, "is_active")
	assert.Contains(t, stmt.Vars, true)
}

func TestHiresTotalQueryExcludesSoftDeleted(t *testing.T) {
	db := dryRunDB(t)

	var total int64
	stmt := hiresTotalQuery(db).Scan(&total).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "COALESCE(SUM(amount), 0)")
	assert.Contains(t, sql, "is_active")
	assert.Contains(t, stmt.Vars, true)
}

func TestActiveMaterialsQueryExcludesSoftDeleted(t *testing.T) {
	db := dryRunDB(t)

	var materials []models.MaterialPurchase
	stmt := activeMaterialsQuery(db).Find(&materials).Statement

	assert.Contains(t, stmt.SQL.String(), "is_active")
	assert.Contains(t, stmt.Vars, true)
}

func TestReceiptTotalsHaveNoSoftDeleteFilter(t *testing.T) {
	// Phiếu thu và chi phí không có xóa mềm nên tổng không được lọc is_active
	db := dryRunDB(t)

	var total int64
	stmt := db.Model(&models.Receipt{}).Select("COALESCE(SUM(amount), 0)").Scan(&total).Statement

	assert.NotContains(t, stmt.SQL.String(), "is_active")
}
