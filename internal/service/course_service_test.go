package service

import (
	"context"
	"testing"

	"internhub-go/internal/repository"
	"internhub-go/pkg/events"
)

func newCourseServiceForTest(t *testing.T, kv *memKV, publish EventPublisher) CourseService {
	t.Helper()
	s, err := NewCourseService(repository.NewCourseRepository(kv), publish)
	if err != nil {
		t.Fatalf("NewCourseService failed: %v", err)
	}
	return s
}

func TestEnrollIdempotent(t *testing.T) {
	s := newCourseServiceForTest(t, newMemKV(), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.Enroll(ctx, "stu-1", "course-001"); err != nil {
			t.Fatalf("Enroll failed: %v", err)
		}
	}
	enrolled := s.GetEnrolledCourses("stu-1")
	if len(enrolled) != 1 || enrolled[0].ID != "course-001" {
		t.Fatalf("expected exactly one enrolled course, got %d", len(enrolled))
	}
}

func TestMarkCompletedWithoutEnrollment(t *testing.T) {
	var published []events.PlatformEvent
	publish := EventPublisher(func(evt events.PlatformEvent) error {
		published = append(published, evt)
		return nil
	})
	s := newCourseServiceForTest(t, newMemKV(), publish)
	ctx := context.Background()

	// 未报名的课程也可以直接标记完成
	if err := s.MarkCompleted(ctx, "stu-1", "course-002"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	completed := s.GetCompletedCourses("stu-1")
	if len(completed) != 1 || completed[0].ID != "course-002" {
		t.Fatalf("expected course-002 completed, got %+v", completed)
	}
	// 完成不会把课程加入报名列表
	if got := len(s.GetEnrolledCourses("stu-1")); got != 0 {
		t.Fatalf("expected no enrollments, got %d", got)
	}

	if len(published) != 1 || published[0].Type != events.TypeCourseCompleted {
		t.Fatalf("expected one course_completed event, got %+v", published)
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	s := newCourseServiceForTest(t, newMemKV(), nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := s.MarkCompleted(ctx, "stu-1", "course-001"); err != nil {
			t.Fatalf("MarkCompleted failed: %v", err)
		}
	}
	if got := len(s.GetCompletedCourses("stu-1")); got != 1 {
		t.Fatalf("expected one completed course, got %d", got)
	}
}

func TestCourseStateSurvivesRestart(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	s1 := newCourseServiceForTest(t, kv, nil)
	if err := s1.Enroll(ctx, "stu-1", "course-001"); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if err := s1.MarkCompleted(ctx, "stu-1", "course-003"); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}

	s2 := newCourseServiceForTest(t, kv, nil)
	if got := len(s2.GetEnrolledCourses("stu-1")); got != 1 {
		t.Fatalf("expected 1 restored enrollment, got %d", got)
	}
	if got := len(s2.GetCompletedCourses("stu-1")); got != 1 {
		t.Fatalf("expected 1 restored completion, got %d", got)
	}
}

func TestGetCourseUnknownID(t *testing.T) {
	s := newCourseServiceForTest(t, newMemKV(), nil)
	if got := s.GetCourse("course-nope"); got != nil {
		t.Fatalf("expected nil for unknown course, got %+v", got)
	}
}
