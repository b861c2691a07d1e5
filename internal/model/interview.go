package model

import "time"

// InterviewQuestion 是模拟面试中的一道题目。
// Answer 与 Feedback 在作答后填充。
type InterviewQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

// InterviewFeedback 是一场面试结束后的总体反馈。
type InterviewFeedback struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Overall      string   `json:"overall"`
	Rating       int      `json:"rating"`
}

// MockInterview 代表一场按角色生成的模拟面试。
// CompletedAt 一旦写入，整场面试即为终态，不再接受任何变更。
type MockInterview struct {
	ID          string              `json:"id"`
	Role        string              `json:"role"`
	Questions   []InterviewQuestion `json:"questions"`
	Feedback    *InterviewFeedback  `json:"feedback,omitempty"`
	CompletedAt *time.Time          `json:"completedAt,omitempty"`
}

// Completed 判断面试是否已进入终态。
func (m *MockInterview) Completed() bool {
	return m.CompletedAt != nil
}
