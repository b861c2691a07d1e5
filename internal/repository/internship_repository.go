package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"internhub-go/internal/model"
)

// 岗位目录使用三个互相独立的存储键，每个变更操作整键重写。
const (
	keyPostedInternships = "internships:posted"
	keyApplications      = "internships:applications"
	keySavedMap          = "internships:saved"
)

// InternshipRepository 定义了岗位目录三个集合的持久化操作：
// 用户发布的岗位（种子目录之外的增量）、申请列表、按学生分组的收藏映射。
type InternshipRepository interface {
	SavePosted(ctx context.Context, posted []model.Internship) error
	LoadPosted(ctx context.Context) ([]model.Internship, error)
	SaveApplications(ctx context.Context, apps []model.Application) error
	LoadApplications(ctx context.Context) ([]model.Application, error)
	SaveSavedMap(ctx context.Context, saved map[string][]string) error
	LoadSavedMap(ctx context.Context) (map[string][]string, error)
}

type internshipRepository struct {
	kv KVStore
}

// NewInternshipRepository 创建一个新的 InternshipRepository 实例。
func NewInternshipRepository(kv KVStore) InternshipRepository {
	return &internshipRepository{kv: kv}
}

func (r *internshipRepository) SavePosted(ctx context.Context, posted []model.Internship) error {
	return putJSON(ctx, r.kv, keyPostedInternships, posted)
}

func (r *internshipRepository) LoadPosted(ctx context.Context) ([]model.Internship, error) {
	var posted []model.Internship
	if err := getJSON(ctx, r.kv, keyPostedInternships, &posted); err != nil {
		return nil, err
	}
	return posted, nil
}

func (r *internshipRepository) SaveApplications(ctx context.Context, apps []model.Application) error {
	return putJSON(ctx, r.kv, keyApplications, apps)
}

func (r *internshipRepository) LoadApplications(ctx context.Context) ([]model.Application, error) {
	var apps []model.Application
	if err := getJSON(ctx, r.kv, keyApplications, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *internshipRepository) SaveSavedMap(ctx context.Context, saved map[string][]string) error {
	return putJSON(ctx, r.kv, keySavedMap, saved)
}

func (r *internshipRepository) LoadSavedMap(ctx context.Context) (map[string][]string, error) {
	saved := make(map[string][]string)
	if err := getJSON(ctx, r.kv, keySavedMap, &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// putJSON 将值序列化后整键重写。
func putJSON(ctx context.Context, kv KVStore, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	return kv.Put(ctx, key, data)
}

// getJSON 读取并反序列化整键；键不存在时不修改 out。
func getJSON(ctx context.Context, kv KVStore, key string, out interface{}) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	return getJSONBytes(data, key, out)
}

func getJSONBytes(data []byte, key string, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal value for key %q: %w", key, err)
	}
	return nil
}
