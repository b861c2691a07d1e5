package service

import (
	"context"
	"fmt"
	"time"

	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/pkg/events"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"
)

// NotificationService 消费平台事件并为用户生成通知。
type NotificationService interface {
	Process(ctx context.Context, evt events.PlatformEvent) error
	List(ctx context.Context, userID string) ([]model.Notification, error)
}

type notificationService struct {
	repo repository.NotificationRepository
}

// NewNotificationService 创建一个新的 NotificationService 实例。
func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

// Process 实现 kafka.EventProcessor，将平台事件转化为用户通知。
func (s *notificationService) Process(ctx context.Context, evt events.PlatformEvent) error {
	if evt.UserID == "" {
		log.Warnf("[NotificationService] 收到缺少 user_id 的事件, type: %s, 已跳过", evt.Type)
		return nil
	}
	message := renderMessage(evt)
	if message == "" {
		log.Warnf("[NotificationService] 未知事件类型: %s, 已跳过", evt.Type)
		return nil
	}
	n := model.Notification{
		ID:        token.NewID("ntf"),
		UserID:    evt.UserID,
		Type:      evt.Type,
		Message:   message,
		CreatedAt: model.LocalTime(time.Now()),
	}
	if err := s.repo.Append(ctx, evt.UserID, n); err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}
	log.Infof("[NotificationService] 已为用户 %s 生成通知: %s", evt.UserID, evt.Type)
	return nil
}

// List 返回用户的通知列表。
func (s *notificationService) List(ctx context.Context, userID string) ([]model.Notification, error) {
	return s.repo.List(ctx, userID)
}

func renderMessage(evt events.PlatformEvent) string {
	switch evt.Type {
	case events.TypeApplicationSubmitted:
		return fmt.Sprintf("你已成功投递岗位「%s」，请耐心等待审核。", evt.Title)
	case events.TypeApplicationStatus:
		return fmt.Sprintf("你投递的岗位「%s」状态已更新为 %s。", evt.Title, evt.Status)
	case events.TypeInternshipPosted:
		return fmt.Sprintf("你发布的岗位「%s」已上线。", evt.Title)
	case events.TypeCourseCompleted:
		return fmt.Sprintf("恭喜完成课程「%s」！", evt.Title)
	default:
		return ""
	}
}
