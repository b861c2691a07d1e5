package model

import "time"

// Location 描述岗位的工作地点。
type Location struct {
	Country  string `json:"country"`
	City     string `json:"city"`
	IsRemote bool   `json:"isRemote"`
}

// Stipend 描述岗位的津贴信息。
type Stipend struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	IsPaid   bool   `json:"isPaid"`
}

// Internship 代表一条实习岗位记录。
// PostedDate 在创建时写入，之后不再变更。
type Internship struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	EmployerID          string    `json:"employerId"`
	Location            Location  `json:"location"`
	Category            string    `json:"category"`
	Role                string    `json:"role"`
	Stipend             Stipend   `json:"stipend"`
	Duration            string    `json:"duration"`
	StartDate           string    `json:"startDate"`
	ApplicationDeadline string    `json:"applicationDeadline"`
	Responsibilities    []string  `json:"responsibilities"`
	Requirements        []string  `json:"requirements"`
	Description         string    `json:"description"`
	PostedDate          time.Time `json:"postedDate"`
}

// ApplicationStatus 表示申请的处理状态。状态迁移不受约束（任意状态可跳转到任意状态）。
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewing   ApplicationStatus = "reviewing"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

// Valid 判断给定状态是否为已知的申请状态。
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application 代表一名学生对一个岗位的申请。
// AppliedDate 在创建时写入，之后不再变更。同一 (studentId, internshipId)
// 允许出现多条记录（现状保留，见 DESIGN.md）。
type Application struct {
	ID           string            `json:"id"`
	InternshipID string            `json:"internshipId"`
	StudentID    string            `json:"studentId"`
	Status       ApplicationStatus `json:"status"`
	AppliedDate  time.Time         `json:"appliedDate"`
	CoverLetter  string            `json:"coverLetter,omitempty"`
}
