package service

import (
	"context"
	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/internal/seed"
	"internhub-go/pkg/events"
	"internhub-go/pkg/log"
	"sync"
)

// CourseService 接口定义了课程目录状态持有者的所有操作。
//
// 课程目录来自种子数据且不可变；选课与结课是两张按学生分组的集合，
// 各占一个持久化键，变更幂等且整键重写。
// 注意：结课不要求先选课（现状保留，见 DESIGN.md）。
type CourseService interface {
	GetCourse(id string) *model.Course
	ListCourses() []model.Course
	Enroll(ctx context.Context, studentID, courseID string) error
	MarkCompleted(ctx context.Context, studentID, courseID string) error
	GetEnrolledCourses(studentID string) []model.Course
	GetCompletedCourses(studentID string) []model.Course
}

type courseService struct {
	mu          sync.Mutex
	courses     []model.Course
	enrollments map[string][]string
	completions map[string][]string

	repo    repository.CourseRepository
	publish EventPublisher
}

// NewCourseService 创建课程目录状态持有者并加载持久化的关联表。
func NewCourseService(repo repository.CourseRepository, publish EventPublisher) (CourseService, error) {
	s := &courseService{
		courses:     seed.Courses(),
		enrollments: make(map[string][]string),
		completions: make(map[string][]string),
		repo:        repo,
		publish:     publish,
	}

	ctx := context.Background()
	enrollments, err := repo.LoadEnrollments(ctx)
	if err != nil {
		return nil, err
	}
	if enrollments != nil {
		s.enrollments = enrollments
	}
	completions, err := repo.LoadCompletions(ctx)
	if err != nil {
		return nil, err
	}
	if completions != nil {
		s.completions = completions
	}
	return s, nil
}

// GetCourse 按 id 线性扫描课程目录；未命中返回 nil。
func (s *courseService) GetCourse(id string) *model.Course {
	for i := range s.courses {
		if s.courses[i].ID == id {
			out := s.courses[i]
			return &out
		}
	}
	return nil
}

// ListCourses 返回课程目录的一份拷贝。
func (s *courseService) ListCourses() []model.Course {
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Enroll 幂等地将课程加入学生的选课集合并整键持久化。
func (s *courseService) Enroll(ctx context.Context, studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.enrollments[studentID] {
		if id == courseID {
			return nil
		}
	}
	next := copySavedMap(s.enrollments)
	next[studentID] = append(next[studentID], courseID)
	if err := s.repo.SaveEnrollments(ctx, next); err != nil {
		return err
	}
	s.enrollments = next
	return nil
}

// MarkCompleted 幂等地将课程加入学生的结课集合并整键持久化。
// 不校验该课程是否已选（现状保留）。
func (s *courseService) MarkCompleted(ctx context.Context, studentID, courseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.completions[studentID] {
		if id == courseID {
			return nil
		}
	}
	next := copySavedMap(s.completions)
	next[studentID] = append(next[studentID], courseID)
	if err := s.repo.SaveCompletions(ctx, next); err != nil {
		return err
	}
	s.completions = next

	title := ""
	for i := range s.courses {
		if s.courses[i].ID == courseID {
			title = s.courses[i].Title
			break
		}
	}
	if s.publish != nil {
		if err := s.publish(events.PlatformEvent{
			Type:     events.TypeCourseCompleted,
			UserID:   studentID,
			CourseID: courseID,
			Title:    title,
		}); err != nil {
			log.Warnf("发布平台事件失败: type=%s, error: %v", events.TypeCourseCompleted, err)
		}
	}
	return nil
}

// GetEnrolledCourses 返回学生已选课程的记录（纯内存过滤）。
func (s *courseService) GetEnrolledCourses(studentID string) []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coursesByIDs(s.enrollments[studentID])
}

// GetCompletedCourses 返回学生已完成课程的记录（纯内存过滤）。
func (s *courseService) GetCompletedCourses(studentID string) []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coursesByIDs(s.completions[studentID])
}

func (s *courseService) coursesByIDs(ids []string) []model.Course {
	out := make([]model.Course, 0)
	for _, id := range ids {
		for i := range s.courses {
			if s.courses[i].ID == id {
				out = append(out, s.courses[i])
				break
			}
		}
	}
	return out
}
