package service

import (
	"context"
	"testing"

	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/pkg/events"
)

func newInternshipServiceForTest(t *testing.T, kv *memKV) InternshipService {
	t.Helper()
	s, err := NewInternshipService(repository.NewInternshipRepository(kv), nil, nil)
	if err != nil {
		t.Fatalf("NewInternshipService failed: %v", err)
	}
	return s
}

func TestApplyStartsPending(t *testing.T) {
	s := newInternshipServiceForTest(t, newMemKV())
	ctx := context.Background()

	app, err := s.Apply(ctx, "intern-001", "stu-1", ApplyInput{CoverLetter: "hello"})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if app.Status != model.StatusPending {
		t.Fatalf("expected status %q, got %q", model.StatusPending, app.Status)
	}
	if app.ID == "" || app.AppliedDate.IsZero() {
		t.Fatalf("expected synthesized id and applied date, got %+v", app)
	}

	apps := s.GetStudentApplications("stu-1")
	if len(apps) != 1 || apps[0].ID != app.ID {
		t.Fatalf("expected one application for stu-1, got %d", len(apps))
	}
}

func TestApplyAllowsDuplicates(t *testing.T) {
	s := newInternshipServiceForTest(t, newMemKV())
	ctx := context.Background()

	first, err := s.Apply(ctx, "intern-001", "stu-1", ApplyInput{})
	if err != nil {
		t.Fatalf("first Apply failed: %v", err)
	}
	second, err := s.Apply(ctx, "intern-001", "stu-1", ApplyInput{})
	if err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct application ids, both were %q", first.ID)
	}
	if got := len(s.GetStudentApplications("stu-1")); got != 2 {
		t.Fatalf("expected 2 applications, got %d", got)
	}
}

func TestSaveInternshipIdempotent(t *testing.T) {
	s := newInternshipServiceForTest(t, newMemKV())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := s.SaveInternship(ctx, "stu-1", "intern-002"); err != nil {
			t.Fatalf("SaveInternship failed: %v", err)
		}
	}
	saved := s.GetSavedInternships("stu-1")
	if len(saved) != 1 || saved[0].ID != "intern-002" {
		t.Fatalf("expected exactly one saved internship, got %d", len(saved))
	}

	if err := s.UnsaveInternship(ctx, "stu-1", "intern-002"); err != nil {
		t.Fatalf("UnsaveInternship failed: %v", err)
	}
	// 取消一个不在收藏里的岗位也应当安静地成功
	if err := s.UnsaveInternship(ctx, "stu-1", "intern-002"); err != nil {
		t.Fatalf("second UnsaveInternship failed: %v", err)
	}
	if got := len(s.GetSavedInternships("stu-1")); got != 0 {
		t.Fatalf("expected no saved internships, got %d", got)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	kv := newMemKV()
	ctx := context.Background()

	s1 := newInternshipServiceForTest(t, kv)
	created, err := s1.CreateInternship(ctx, CreateInternshipInput{
		Title:      "Platform Intern",
		Company:    "Acme",
		EmployerID: "emp-1",
	})
	if err != nil {
		t.Fatalf("CreateInternship failed: %v", err)
	}
	if _, err := s1.Apply(ctx, created.ID, "stu-1", ApplyInput{}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := s1.SaveInternship(ctx, "stu-1", created.ID); err != nil {
		t.Fatalf("SaveInternship failed: %v", err)
	}

	// 在同一个持久化空间上重建服务，相当于进程重启
	s2 := newInternshipServiceForTest(t, kv)
	if got := s2.GetInternship(created.ID); got == nil || got.Title != "Platform Intern" {
		t.Fatalf("posted internship not restored: %+v", got)
	}
	if got := len(s2.GetStudentApplications("stu-1")); got != 1 {
		t.Fatalf("expected 1 restored application, got %d", got)
	}
	if got := len(s2.GetSavedInternships("stu-1")); got != 1 {
		t.Fatalf("expected 1 restored saved internship, got %d", got)
	}
}

func TestPersistenceFailureLeavesStateUnchanged(t *testing.T) {
	kv := newMemKV()
	s := newInternshipServiceForTest(t, kv)
	ctx := context.Background()

	kv.failPuts = true
	if _, err := s.Apply(ctx, "intern-001", "stu-1", ApplyInput{}); err == nil {
		t.Fatal("expected Apply to fail when persistence fails")
	}
	if err := s.SaveInternship(ctx, "stu-1", "intern-001"); err == nil {
		t.Fatal("expected SaveInternship to fail when persistence fails")
	}
	kv.failPuts = false

	if got := len(s.GetStudentApplications("stu-1")); got != 0 {
		t.Fatalf("expected no applications after failed writes, got %d", got)
	}
	if got := len(s.GetSavedInternships("stu-1")); got != 0 {
		t.Fatalf("expected no saved internships after failed writes, got %d", got)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	kv := newMemKV()
	var published []events.PlatformEvent
	publish := EventPublisher(func(evt events.PlatformEvent) error {
		published = append(published, evt)
		return nil
	})
	s, err := NewInternshipService(repository.NewInternshipRepository(kv), publish, nil)
	if err != nil {
		t.Fatalf("NewInternshipService failed: %v", err)
	}
	ctx := context.Background()

	app, err := s.Apply(ctx, "intern-003", "stu-1", ApplyInput{})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	// 状态转移没有约束，已录取也可以回退
	for _, status := range []model.ApplicationStatus{model.StatusAccepted, model.StatusRejected, model.StatusPending} {
		updated, err := s.UpdateApplicationStatus(ctx, app.ID, status)
		if err != nil {
			t.Fatalf("UpdateApplicationStatus(%s) failed: %v", status, err)
		}
		if updated == nil || updated.Status != status {
			t.Fatalf("expected status %q, got %+v", status, updated)
		}
	}

	missing, err := s.UpdateApplicationStatus(ctx, "app-nope", model.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected error for unknown application: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown application, got %+v", missing)
	}

	// 1 次投递 + 3 次状态变更
	if len(published) != 4 {
		t.Fatalf("expected 4 published events, got %d", len(published))
	}
	if published[0].Type != events.TypeApplicationSubmitted {
		t.Fatalf("expected first event %q, got %q", events.TypeApplicationSubmitted, published[0].Type)
	}
}

func TestCreateInternshipVisibleToEmployer(t *testing.T) {
	s := newInternshipServiceForTest(t, newMemKV())
	ctx := context.Background()

	before := len(s.ListInternships())
	created, err := s.CreateInternship(ctx, CreateInternshipInput{
		Title:      "Data Intern",
		Company:    "Acme",
		EmployerID: "emp-9",
	})
	if err != nil {
		t.Fatalf("CreateInternship failed: %v", err)
	}
	if got := len(s.ListInternships()); got != before+1 {
		t.Fatalf("expected catalog to grow from %d to %d, got %d", before, before+1, got)
	}

	mine := s.GetEmployerInternships("emp-9")
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("expected employer to see the created internship, got %+v", mine)
	}
	if got := len(s.GetEmployerInternships("emp-other")); got != 0 {
		t.Fatalf("expected no internships for another employer, got %d", got)
	}
}
