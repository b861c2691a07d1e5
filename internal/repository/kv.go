// Package repository 定义了持久化键值空间的接口和实现。
//
// 平台的所有持久化都走同一个键值空间：固定字符串键 → JSON 值，
// 每次变更整值重写（write-through），没有版本化或迁移逻辑。
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore 是持久化键值空间的抽象。
// Get 在键不存在时返回 (nil, nil)，调用方必须判空。
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// ---- Redis 实现 ----

type redisKVStore struct {
	redisClient *redis.Client
}

// NewRedisKVStore 创建基于 Redis 的 KVStore 实现。
func NewRedisKVStore(redisClient *redis.Client) KVStore {
	return &redisKVStore{redisClient: redisClient}
}

func (s *redisKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return data, nil
}

func (s *redisKVStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.redisClient.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *redisKVStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}

// ---- MySQL (GORM) 实现 ----

// KVEntry 对应数据库中的 'kv_entries' 表，一行保存一个键的完整 JSON 值。
type KVEntry struct {
	K string `gorm:"type:varchar(191);primaryKey;column:k"`
	V []byte `gorm:"type:longblob;column:v"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (KVEntry) TableName() string {
	return "kv_entries"
}

type gormKVStore struct {
	db *gorm.DB
}

// NewGormKVStore 创建基于 MySQL 的 KVStore 实现，并保证表结构存在。
func NewGormKVStore(db *gorm.DB) (KVStore, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &gormKVStore{db: db}, nil
}

func (s *gormKVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return entry.V, nil
}

func (s *gormKVStore) Put(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{K: key, V: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "k"}}, DoUpdates: clause.AssignmentColumns([]string{"v"})}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *gormKVStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&KVEntry{}, "k = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}
	return nil
}
