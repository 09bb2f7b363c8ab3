package services

import (
	"context"
	"sort"
	"strings"

	"congtrinh/dto"
	apperrors "congtrinh/errors"
	"congtrinh/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// SearchService tìm kiếm mờ thợ và công trình theo tên, không phân biệt dấu
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// NormalizeQuery chuẩn hóa chuỗi: bỏ dấu tiếng Việt, thường hóa, cắt khoảng trắng
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Chi phí sửa một ký tự tính là 1 để khoảng cách không vượt quá độ dài chuỗi
var similarityOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// CalculateSimilarity tính độ tương đồng giữa hai chuỗi đã chuẩn hóa, [0, 1]
func CalculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), similarityOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// ScoreName chấm điểm một tên so với query đã chuẩn hóa
func ScoreName(normalizedQuery, name string, cm *closestmatch.ClosestMatch) int {
	normalizedName := NormalizeQuery(name)
	score := 0

	if normalizedName == normalizedQuery {
		score += 30
	} else if strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	}

	if cm != nil && cm.Closest(normalizedQuery) == normalizedName {
		score += 10
	}

	similarity := CalculateSimilarity(normalizedQuery, normalizedName)
	if similarity > 0.7 {
		score += int(similarity * 10)
	}

	return score
}

// Search tìm thợ và công trình khớp query, trả về danh sách đã chấm điểm
// giảm dần
func (s *SearchService) Search(ctx context.Context, query string) ([]dto.SearchResult, error) {
	normalizedQuery := NormalizeQuery(query)
	if normalizedQuery == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Thiếu từ khóa tìm kiếm", nil)
	}

	var workers []models.Worker
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&workers).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn thợ", err)
	}

	var projects []models.Project
	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "lỗi truy vấn công trình", err)
	}

	names := make([]string, 0, len(workers)+len(projects))
	for _, w := range workers {
		names = append(names, NormalizeQuery(w.FullName))
	}
	for _, p := range projects {
		names = append(names, NormalizeQuery(p.Name))
	}

	var cm *closestmatch.ClosestMatch
	if len(names) > 0 {
		cm = createMatcher(names)
	}

	var results []dto.SearchResult
	for _, w := range workers {
		score := ScoreName(normalizedQuery, w.FullName, cm)
		if score > 0 {
			results = append(results, dto.SearchResult{
				Type:  "worker",
				ID:    w.ID,
				Name:  w.FullName,
				Extra: w.Role,
				Score: score,
			})
		}
	}
	for _, p := range projects {
		score := ScoreName(normalizedQuery, p.Name, cm)
		if score > 0 {
			results = append(results, dto.SearchResult{
				Type:  "project",
				ID:    p.ID,
				Name:  p.Name,
				Extra: p.ClientName,
				Score: score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}
