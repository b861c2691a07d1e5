package service

import (
	"errors"
	"testing"
)

func TestGenerateInterview(t *testing.T) {
	s := NewInterviewService()

	iv := s.Generate("Frontend Developer")
	if iv.ID == "" || iv.Role != "Frontend Developer" {
		t.Fatalf("unexpected interview: %+v", iv)
	}
	if len(iv.Questions) == 0 {
		t.Fatal("expected generated questions")
	}
	for _, q := range iv.Questions {
		if q.ID == "" || q.Question == "" {
			t.Fatalf("expected question ids and text, got %+v", q)
		}
		if q.Answer != "" || q.Feedback != "" {
			t.Fatalf("fresh question must be unanswered, got %+v", q)
		}
	}
	if iv.Completed() {
		t.Fatal("fresh interview must not be completed")
	}

	// 未收录的角色回退到通用题组，而不是空面试
	generic := s.Generate("Underwater Basket Weaver")
	if len(generic.Questions) == 0 {
		t.Fatal("expected generic questions for unknown role")
	}
}

func TestSubmitAnswerRecordsFeedback(t *testing.T) {
	s := NewInterviewService()
	iv := s.Generate("Backend Developer")

	q := iv.Questions[0]
	updated, err := s.SubmitAnswer(iv.ID, q.ID, "I would use a message queue to decouple the two services.")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if updated.Questions[0].Answer == "" || updated.Questions[0].Feedback == "" {
		t.Fatalf("expected answer and feedback recorded, got %+v", updated.Questions[0])
	}

	// 重答同一题覆盖旧答案
	again, err := s.SubmitAnswer(iv.ID, q.ID, "Short answer.")
	if err != nil {
		t.Fatalf("second SubmitAnswer failed: %v", err)
	}
	if again.Questions[0].Answer != "Short answer." {
		t.Fatalf("expected answer overwritten, got %q", again.Questions[0].Answer)
	}
}

func TestSubmitAnswerUnknownIDs(t *testing.T) {
	s := NewInterviewService()
	iv := s.Generate("Data Analyst")

	got, err := s.SubmitAnswer("iv-nope", "q-nope", "x")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unknown interview, got %+v, %v", got, err)
	}
	got, err = s.SubmitAnswer(iv.ID, "q-nope", "x")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unknown question, got %+v, %v", got, err)
	}
}

func TestCompleteIsTerminal(t *testing.T) {
	s := NewInterviewService()
	iv := s.Generate("Product Designer")

	if _, err := s.SubmitAnswer(iv.ID, iv.Questions[0].ID, "An answer."); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	done, err := s.Complete(iv.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.Feedback == nil || done.CompletedAt == nil {
		t.Fatalf("expected overall feedback and completion time, got %+v", done)
	}
	if !done.Completed() {
		t.Fatal("expected terminal interview")
	}

	// 终态后任何变更都被拒绝
	if _, err := s.SubmitAnswer(iv.ID, iv.Questions[0].ID, "late"); !errors.Is(err, ErrInterviewCompleted) {
		t.Fatalf("expected ErrInterviewCompleted, got %v", err)
	}
	if _, err := s.Complete(iv.ID); !errors.Is(err, ErrInterviewCompleted) {
		t.Fatalf("expected ErrInterviewCompleted on double complete, got %v", err)
	}
}

func TestCompleteUnknownInterview(t *testing.T) {
	s := NewInterviewService()
	got, err := s.Complete("iv-nope")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) for unknown interview, got %+v, %v", got, err)
	}
}
