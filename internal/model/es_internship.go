package model

// SearchHit 定义了返回给前端的岗位搜索结果结构。
type SearchHit struct {
	InternshipID string  `json:"internshipId"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Category     string  `json:"category"`
	Score        float64 `json:"score"`
}

// EsInternship 代表存储在 Elasticsearch 中的岗位文档结构。
type EsInternship struct {
	InternshipID string `json:"internship_id"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Role         string `json:"role"`
	Country      string `json:"country"`
	City         string `json:"city"`
	IsRemote     bool   `json:"is_remote"`
	IsPaid       bool   `json:"is_paid"`
}
