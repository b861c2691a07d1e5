package service

import (
	"context"
	"internhub-go/internal/config"
	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/pkg/log"
	"internhub-go/pkg/storage"
	"internhub-go/pkg/token"
	"sync"
	"time"
)

// PreviewStore 管理简历预览句柄的获取与释放。
// Acquire 返回对象名（用于撤销）与可预览的 URL。
type PreviewStore interface {
	Acquire(ctx context.Context, fileName, contentType string, content []byte) (objectName, url string, err error)
	Release(ctx context.Context, objectName string) error
}

// ResumeService 接口定义了简历持有状态的所有操作。
//
// 服务至多持有一个内存文件句柄；持久化的只有文件名和上传时间标记。
// 预览句柄在每一条替换/清除路径上都会被释放，包括进程退出（Close）。
// 重启后标记可读，但文件句柄不可恢复——这是已知且接受的行为。
type ResumeService interface {
	Set(ctx context.Context, fileName, contentType string, content []byte) (*model.ResumeFile, error)
	Clear(ctx context.Context) error
	Current() *model.ResumeFile
	Marker(ctx context.Context) (*model.ResumeMarker, error)
	Close() error
}

type resumeService struct {
	mu      sync.Mutex
	current *model.ResumeFile

	repo     repository.ResumeRepository
	previews PreviewStore
}

// NewResumeService 创建简历持有服务。启动时读取持久化标记：
// 标记存在说明上一会话曾上传过简历，但文件本身已不可恢复，只记录日志。
func NewResumeService(repo repository.ResumeRepository, previews PreviewStore) ResumeService {
	s := &resumeService{repo: repo, previews: previews}

	marker, err := repo.LoadMarker(context.Background())
	if err != nil {
		log.Warnf("读取简历标记失败: %v", err)
	} else if marker != nil {
		log.Infof("检测到上一会话的简历标记 '%s'，文件句柄不可恢复", marker.FileName)
	}
	return s
}

// Set 持有一个新的简历文件：先释放旧的预览句柄，再派生新句柄，
// 最后只把文件名+时间标记写入持久化。标记写入失败时回滚新句柄。
func (s *resumeService) Set(ctx context.Context, fileName, contentType string, content []byte) (*model.ResumeFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked(ctx)

	objectName, url, err := s.previews.Acquire(ctx, fileName, contentType, content)
	if err != nil {
		return nil, err
	}

	marker := &model.ResumeMarker{FileName: fileName, UploadedAt: time.Now()}
	if err := s.repo.SaveMarker(ctx, marker); err != nil {
		if relErr := s.previews.Release(ctx, objectName); relErr != nil {
			log.Warnf("回滚简历预览句柄失败: %v", relErr)
		}
		return nil, err
	}

	s.current = &model.ResumeFile{
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
		PreviewURL:  url,
		ObjectName:  objectName,
	}
	out := *s.current
	return &out, nil
}

// Clear 释放当前句柄并删除持久化标记。
func (s *resumeService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(ctx)
	return s.repo.DeleteMarker(ctx)
}

// Current 返回当前持有的文件句柄；没有时为 nil。
func (s *resumeService) Current() *model.ResumeFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	out := *s.current
	return &out
}

// Marker 返回持久化的简历标记；不存在时为 (nil, nil)。
func (s *resumeService) Marker(ctx context.Context) (*model.ResumeMarker, error) {
	return s.repo.LoadMarker(ctx)
}

// Close 在进程退出路径上释放仍被持有的预览句柄。
func (s *resumeService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(context.Background())
	return nil
}

// releaseLocked 释放当前预览句柄并丢弃内存文件。调用方必须持有锁。
func (s *resumeService) releaseLocked(ctx context.Context) {
	if s.current == nil {
		return
	}
	if err := s.previews.Release(ctx, s.current.ObjectName); err != nil {
		log.Warnf("释放简历预览句柄失败: %s, error: %v", s.current.ObjectName, err)
	}
	s.current = nil
}

// minioPreviewStore 是 PreviewStore 的 MinIO 实现：
// 预览句柄 = 短期对象 + 预签名 GET URL；释放 = 删除对象。
type minioPreviewStore struct {
	bucket string
	expiry time.Duration
}

// NewMinioPreviewStore 创建基于 MinIO 的预览句柄存储。
func NewMinioPreviewStore(cfg config.MinIOConfig, expiry time.Duration) PreviewStore {
	return &minioPreviewStore{bucket: cfg.BucketName, expiry: expiry}
}

func (p *minioPreviewStore) Acquire(ctx context.Context, fileName, contentType string, content []byte) (string, string, error) {
	objectName := "resume/" + token.NewID("preview") + "/" + fileName
	if err := storage.PutObject(ctx, p.bucket, objectName, content, contentType); err != nil {
		return "", "", err
	}
	url, err := storage.GetPresignedURL(p.bucket, objectName, p.expiry)
	if err != nil {
		// URL 派生失败时不留下孤儿对象
		if remErr := storage.RemoveObject(ctx, p.bucket, objectName); remErr != nil {
			log.Warnf("清理预览对象失败: %s, error: %v", objectName, remErr)
		}
		return "", "", err
	}
	return objectName, url, nil
}

func (p *minioPreviewStore) Release(ctx context.Context, objectName string) error {
	return storage.RemoveObject(ctx, p.bucket, objectName)
}
