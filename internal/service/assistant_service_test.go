package service

import (
	"context"
	"strings"
	"testing"

	"internhub-go/internal/model"
	"internhub-go/internal/seed"
)

func TestTranscriptOpensWithWelcome(t *testing.T) {
	s := NewAssistantService(seed.AudienceStudent, "Ada", 0, seed.MatchReply)

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one opening message, got %d", len(msgs))
	}
	if msgs[0].Sender != model.SenderBot {
		t.Fatalf("expected welcome from bot, got %q", msgs[0].Sender)
	}
	if !strings.Contains(msgs[0].Content, "Ada") {
		t.Fatalf("expected welcome to address the user, got %q", msgs[0].Content)
	}
}

func TestSendMessageAppendsPair(t *testing.T) {
	s := NewAssistantService(seed.AudienceStudent, "Ada", 0, seed.MatchReply)

	reply, err := s.SendMessage(context.Background(), "how do I apply for an internship?")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if reply == nil || reply.Sender != model.SenderBot || reply.Content == "" {
		t.Fatalf("expected a bot reply, got %+v", reply)
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected welcome + user + bot, got %d messages", len(msgs))
	}
	if msgs[1].Sender != model.SenderUser || msgs[2].Sender != model.SenderBot {
		t.Fatalf("unexpected transcript ordering: %+v", msgs)
	}
	if s.State() != StateIdle {
		t.Fatalf("expected idle state after reply, got %q", s.State())
	}
}

func TestBlankInputIsIgnored(t *testing.T) {
	s := NewAssistantService(seed.AudienceGuest, "", 0, seed.MatchReply)

	reply, err := s.SendMessage(context.Background(), "   \t\n ")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if reply != nil {
		t.Fatalf("expected no reply for blank input, got %+v", reply)
	}
	if got := len(s.Messages()); got != 1 {
		t.Fatalf("expected transcript untouched, got %d messages", got)
	}
}

func TestReplyPanicBecomesApology(t *testing.T) {
	panicking := func(audience seed.Audience, input string) string {
		panic("rule table exploded")
	}
	s := NewAssistantService(seed.AudienceStudent, "Ada", 0, panicking)

	reply, err := s.SendMessage(context.Background(), "hello")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if reply.Content != seed.ApologyReply {
		t.Fatalf("expected apology reply, got %q", reply.Content)
	}
	// 状态机不能停在等待应答
	if s.State() != StateIdle {
		t.Fatalf("expected idle state after panic, got %q", s.State())
	}
}

func TestResetTruncatesToWelcome(t *testing.T) {
	s := NewAssistantService(seed.AudienceStudent, "Ada", 0, seed.MatchReply)

	if _, err := s.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	s.Reset()

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Sender != model.SenderBot {
		t.Fatalf("expected only the welcome message after reset, got %d", len(msgs))
	}
}

func TestToggleVisible(t *testing.T) {
	s := NewAssistantService(seed.AudienceGuest, "", 0, seed.MatchReply)

	if !s.ToggleVisible() {
		t.Fatal("expected first toggle to show the assistant")
	}
	if s.ToggleVisible() {
		t.Fatal("expected second toggle to hide the assistant")
	}
}

func TestEnsureAudienceReseedsTranscript(t *testing.T) {
	s := NewAssistantService(seed.AudienceGuest, "", 0, seed.MatchReply)
	if _, err := s.SendMessage(context.Background(), "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	s.EnsureAudience(seed.AudienceEmployer, "Boss")
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected fresh transcript after identity change, got %d messages", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "Boss") {
		t.Fatalf("expected new welcome to address the employer, got %q", msgs[0].Content)
	}

	// 相同身份不重开会话
	if _, err := s.SendMessage(context.Background(), "hello again"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	s.EnsureAudience(seed.AudienceEmployer, "Boss")
	if got := len(s.Messages()); got != 3 {
		t.Fatalf("expected transcript preserved for same identity, got %d messages", got)
	}
}
