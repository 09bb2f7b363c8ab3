package dto

// SearchResult - một kết quả tìm kiếm mờ (thợ hoặc công trình)
type SearchResult struct {
	Type  string `json:"type"`
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Extra string `json:"extra,omitempty"`
	Score int    `json:"score"`
}
