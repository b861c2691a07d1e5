package service

import (
	"context"
	"testing"

	"internhub-go/internal/model"
	"internhub-go/pkg/events"
)

// fakeNotificationRepo 在内存里按用户堆放通知。
type fakeNotificationRepo struct {
	byUser map[string][]model.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{byUser: make(map[string][]model.Notification)}
}

func (f *fakeNotificationRepo) Append(ctx context.Context, userID string, n model.Notification) error {
	f.byUser[userID] = append(f.byUser[userID], n)
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, userID string) ([]model.Notification, error) {
	return f.byUser[userID], nil
}

func TestProcessCreatesNotification(t *testing.T) {
	repo := newFakeNotificationRepo()
	s := NewNotificationService(repo)
	ctx := context.Background()

	err := s.Process(ctx, events.PlatformEvent{
		Type:   events.TypeApplicationStatus,
		UserID: "stu-1",
		Title:  "Data Intern",
		Status: "accepted",
	})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	list, err := s.List(ctx, "stu-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one notification, got %d", len(list))
	}
	n := list[0]
	if n.ID == "" || n.UserID != "stu-1" || n.Type != events.TypeApplicationStatus || n.Message == "" {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestProcessSkipsMalformedEvents(t *testing.T) {
	repo := newFakeNotificationRepo()
	s := NewNotificationService(repo)
	ctx := context.Background()

	// 缺少 user_id 或类型未知的事件被丢弃而不是报错
	if err := s.Process(ctx, events.PlatformEvent{Type: events.TypeCourseCompleted}); err != nil {
		t.Fatalf("Process failed for missing user: %v", err)
	}
	if err := s.Process(ctx, events.PlatformEvent{Type: "mystery", UserID: "stu-1"}); err != nil {
		t.Fatalf("Process failed for unknown type: %v", err)
	}

	list, err := s.List(ctx, "stu-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no notifications, got %d", len(list))
	}
}
