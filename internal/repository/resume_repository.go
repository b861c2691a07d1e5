package repository

import (
	"context"
	"internhub-go/internal/model"
)

// 简历标记的固定存储键。只保存文件名与上传时间，不保存文件内容。
const keyResumeMarker = "resume:marker"

// ResumeRepository 定义了简历标记的持久化操作。
type ResumeRepository interface {
	SaveMarker(ctx context.Context, marker *model.ResumeMarker) error
	LoadMarker(ctx context.Context) (*model.ResumeMarker, error)
	DeleteMarker(ctx context.Context) error
}

type resumeRepository struct {
	kv KVStore
}

// NewResumeRepository 创建一个新的 ResumeRepository 实例。
func NewResumeRepository(kv KVStore) ResumeRepository {
	return &resumeRepository{kv: kv}
}

func (r *resumeRepository) SaveMarker(ctx context.Context, marker *model.ResumeMarker) error {
	return putJSON(ctx, r.kv, keyResumeMarker, marker)
}

// LoadMarker 读取简历标记；不存在时返回 (nil, nil)。
func (r *resumeRepository) LoadMarker(ctx context.Context) (*model.ResumeMarker, error) {
	var marker model.ResumeMarker
	data, err := r.kv.Get(ctx, keyResumeMarker)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	if err := getJSONBytes(data, keyResumeMarker, &marker); err != nil {
		return nil, err
	}
	return &marker, nil
}

func (r *resumeRepository) DeleteMarker(ctx context.Context) error {
	return r.kv.Delete(ctx, keyResumeMarker)
}
