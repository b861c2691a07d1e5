// Package events defines the structure for platform events that are sent to Kafka.
package events

// 平台事件类型。
const (
	TypeApplicationSubmitted = "application_submitted"
	TypeApplicationStatus    = "application_status_changed"
	TypeInternshipPosted     = "internship_posted"
	TypeCourseCompleted      = "course_completed"
)

// PlatformEvent represents a domain event emitted by a state owner.
// UserID 是应当收到通知的用户（学生或雇主）。
type PlatformEvent struct {
	Type         string `json:"type"`
	UserID       string `json:"user_id"`
	InternshipID string `json:"internship_id,omitempty"`
	CourseID     string `json:"course_id,omitempty"`
	Title        string `json:"title,omitempty"`
	Status       string `json:"status,omitempty"`
}
