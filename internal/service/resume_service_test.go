package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"internhub-go/internal/repository"
)

// fakePreviewStore 记录句柄的派生与释放顺序。
type fakePreviewStore struct {
	acquired []string
	released []string
	failNext bool
	seq      int
}

func (f *fakePreviewStore) Acquire(ctx context.Context, fileName, contentType string, content []byte) (string, string, error) {
	if f.failNext {
		f.failNext = false
		return "", "", errors.New("simulated acquire failure")
	}
	f.seq++
	objectName := fmt.Sprintf("obj-%d-%s", f.seq, fileName)
	f.acquired = append(f.acquired, objectName)
	return objectName, "https://preview.local/" + objectName, nil
}

func (f *fakePreviewStore) Release(ctx context.Context, objectName string) error {
	f.released = append(f.released, objectName)
	return nil
}

func newResumeServiceForTest(kv *memKV, previews PreviewStore) ResumeService {
	return NewResumeService(repository.NewResumeRepository(kv), previews)
}

func TestSetHoldsFileAndMarker(t *testing.T) {
	kv := newMemKV()
	previews := &fakePreviewStore{}
	s := newResumeServiceForTest(kv, previews)
	ctx := context.Background()

	resume, err := s.Set(ctx, "cv.pdf", "application/pdf", []byte("pdf-bytes"))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if resume.PreviewURL == "" || resume.ObjectName == "" {
		t.Fatalf("expected a preview handle, got %+v", resume)
	}

	current := s.Current()
	if current == nil || current.FileName != "cv.pdf" {
		t.Fatalf("expected held file, got %+v", current)
	}

	marker, err := s.Marker(ctx)
	if err != nil {
		t.Fatalf("Marker failed: %v", err)
	}
	if marker == nil || marker.FileName != "cv.pdf" || marker.UploadedAt.IsZero() {
		t.Fatalf("expected persisted marker, got %+v", marker)
	}
}

func TestReplaceReleasesOldHandle(t *testing.T) {
	previews := &fakePreviewStore{}
	s := newResumeServiceForTest(newMemKV(), previews)
	ctx := context.Background()

	if _, err := s.Set(ctx, "old.pdf", "application/pdf", []byte("a")); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if _, err := s.Set(ctx, "new.pdf", "application/pdf", []byte("b")); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	if len(previews.released) != 1 || previews.released[0] != previews.acquired[0] {
		t.Fatalf("expected the first handle released, got %+v", previews.released)
	}
	if got := s.Current(); got == nil || got.FileName != "new.pdf" {
		t.Fatalf("expected new file held, got %+v", got)
	}
}

func TestClearReleasesHandleAndMarker(t *testing.T) {
	previews := &fakePreviewStore{}
	s := newResumeServiceForTest(newMemKV(), previews)
	ctx := context.Background()

	if _, err := s.Set(ctx, "cv.pdf", "application/pdf", []byte("a")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	if s.Current() != nil {
		t.Fatal("expected no held file after clear")
	}
	marker, err := s.Marker(ctx)
	if err != nil {
		t.Fatalf("Marker failed: %v", err)
	}
	if marker != nil {
		t.Fatalf("expected marker deleted, got %+v", marker)
	}
	if len(previews.released) != 1 {
		t.Fatalf("expected one released handle, got %d", len(previews.released))
	}
}

func TestAcquireFailureLeavesNothingHeld(t *testing.T) {
	previews := &fakePreviewStore{failNext: true}
	s := newResumeServiceForTest(newMemKV(), previews)
	ctx := context.Background()

	if _, err := s.Set(ctx, "cv.pdf", "application/pdf", []byte("a")); err == nil {
		t.Fatal("expected Set to fail when acquire fails")
	}
	if s.Current() != nil {
		t.Fatal("expected no held file after failed acquire")
	}
}

func TestMarkerFailureRollsBackHandle(t *testing.T) {
	kv := newMemKV()
	previews := &fakePreviewStore{}
	s := newResumeServiceForTest(kv, previews)
	ctx := context.Background()

	kv.failPuts = true
	if _, err := s.Set(ctx, "cv.pdf", "application/pdf", []byte("a")); err == nil {
		t.Fatal("expected Set to fail when marker write fails")
	}
	// 新派生的句柄必须被回滚释放
	if len(previews.acquired) != 1 || len(previews.released) != 1 {
		t.Fatalf("expected acquired handle rolled back, acquired=%d released=%d",
			len(previews.acquired), len(previews.released))
	}
	if s.Current() != nil {
		t.Fatal("expected no held file after rollback")
	}
}

func TestCloseReleasesHeldHandle(t *testing.T) {
	previews := &fakePreviewStore{}
	s := newResumeServiceForTest(newMemKV(), previews)
	ctx := context.Background()

	if _, err := s.Set(ctx, "cv.pdf", "application/pdf", []byte("a")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if len(previews.released) != 1 {
		t.Fatalf("expected handle released on close, got %d", len(previews.released))
	}
}
