package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"internhub-go/internal/model"
)

// 会话用户记录的固定存储键。
const keySessionUser = "session:current_user"

// SessionRepository 定义了会话用户记录的持久化操作。
// 键值空间中至多存在一条会话记录（单会话模型，后写覆盖）。
type SessionRepository interface {
	Save(ctx context.Context, user *model.User) error
	Load(ctx context.Context) (*model.User, error)
	Delete(ctx context.Context) error
}

type sessionRepository struct {
	kv KVStore
}

// NewSessionRepository 创建一个新的 SessionRepository 实例。
func NewSessionRepository(kv KVStore) SessionRepository {
	return &sessionRepository{kv: kv}
}

// Save 将会话用户整条重写到固定键。
func (r *sessionRepository) Save(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session user: %w", err)
	}
	return r.kv.Put(ctx, keySessionUser, data)
}

// Load 读取持久化的会话用户；键不存在时返回 (nil, nil)。
// 记录存在但无法解析时返回错误，由调用方决定是否丢弃。
func (r *sessionRepository) Load(ctx context.Context) (*model.User, error) {
	data, err := r.kv.Get(ctx, keySessionUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session user: %w", err)
	}
	return &user, nil
}

// Delete 删除持久化的会话记录。
func (r *sessionRepository) Delete(ctx context.Context) error {
	return r.kv.Delete(ctx, keySessionUser)
}
