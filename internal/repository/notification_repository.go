package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"internhub-go/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

// NotificationRepository 定义了用户通知列表的操作接口。
// 每个用户一个键，追加时整列表重写，只保留最近 50 条。
type NotificationRepository interface {
	Append(ctx context.Context, userID string, n model.Notification) error
	List(ctx context.Context, userID string) ([]model.Notification, error)
}

type redisNotificationRepository struct {
	redisClient *redis.Client
}

// NewNotificationRepository 创建一个新的 NotificationRepository 实例。
func NewNotificationRepository(redisClient *redis.Client) NotificationRepository {
	return &redisNotificationRepository{redisClient: redisClient}
}

func notificationKey(userID string) string {
	return fmt.Sprintf("notify:%s", userID)
}

// Append 将一条通知追加到用户的通知列表并整体重写。
func (r *redisNotificationRepository) Append(ctx context.Context, userID string, n model.Notification) error {
	list, err := r.List(ctx, userID)
	if err != nil {
		return err
	}
	list = append(list, n)
	// 保留最近 50 条
	if len(list) > 50 {
		list = list[len(list)-50:]
	}
	jsonData, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal notifications: %w", err)
	}
	if err := r.redisClient.Set(ctx, notificationKey(userID), jsonData, 30*24*time.Hour).Err(); err != nil {
		return fmt.Errorf("failed to set notifications: %w", err)
	}
	return nil
}

// List 返回用户的通知列表；没有任何通知时返回空切片。
func (r *redisNotificationRepository) List(ctx context.Context, userID string) ([]model.Notification, error) {
	jsonData, err := r.redisClient.Get(ctx, notificationKey(userID)).Result()
	if err == redis.Nil {
		return []model.Notification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	var list []model.Notification
	if err := json.Unmarshal([]byte(jsonData), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}
	return list, nil
}
