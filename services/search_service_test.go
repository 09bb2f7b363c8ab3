package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nguyễn Văn An", "nguyen van an"},
		{"  Nhà anh Tư  ", "nha anh tu"},
		{"TRẦN VĂN BÌNH", "tran van binh"},
		{"abc 123", "abc 123"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeQuery(tt.input))
	}
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, CalculateSimilarity("nguyen", "nguyen"))
	assert.Equal(t, 1.0, CalculateSimilarity("", ""))

	// khác một ký tự trên chuỗi sáu ký tự
	assert.InDelta(t, 5.0/6.0, CalculateSimilarity("nguyen", "nguyan"), 0.001)

	// Hai chuỗi không chung ký tự nào chạm sàn 0, không bao giờ âm
	assert.Equal(t, 0.0, CalculateSimilarity("abc", "xyz"))
	assert.GreaterOrEqual(t, CalculateSimilarity("ab", "xyzuvw"), 0.0)
	assert.LessOrEqual(t, CalculateSimilarity("ab", "xyzuvw"), 1.0)
}

func TestScoreName(t *testing.T) {
	cm := createMatcher([]string{"nguyen van an", "tran van binh"})

	// Khớp tuyệt đối: 30 điểm khớp + 10 điểm closestmatch + 10 điểm tương đồng
	exact := ScoreName("nguyen van an", "Nguyễn Văn An", cm)
	assert.Equal(t, 50, exact)

	// Chỉ chứa query: 20 điểm, không có điểm tương đồng vì chuỗi quá ngắn
	contains := ScoreName("van an", "Nguyễn Văn An", cm)
	assert.GreaterOrEqual(t, contains, 20)

	// Không liên quan
	unrelated := ScoreName("xyz", "Nguyễn Văn An", nil)
	assert.Equal(t, 0, unrelated)

	// Tên gần giống vẫn được điểm cao hơn tên không liên quan
	typo := ScoreName("nguyen van am", "Nguyễn Văn An", cm)
	assert.Greater(t, typo, unrelated)
}
