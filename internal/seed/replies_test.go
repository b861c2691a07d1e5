package seed

import (
	"strings"
	"testing"
)

func TestWelcomeMessagePerAudience(t *testing.T) {
	student := WelcomeMessage(AudienceStudent, "Ada")
	if !strings.Contains(student, "Ada") {
		t.Fatalf("student welcome must address the user, got %q", student)
	}
	employer := WelcomeMessage(AudienceEmployer, "Boss")
	if !strings.Contains(employer, "Boss") {
		t.Fatalf("employer welcome must address the user, got %q", employer)
	}
	guest := WelcomeMessage(AudienceGuest, "")
	if guest == student || guest == employer {
		t.Fatal("guest welcome must differ from signed-in welcomes")
	}
}

func TestMatchReplyKeywordHit(t *testing.T) {
	reply := MatchReply(AudienceGuest, "How do I SIGN UP for an account?")
	if reply == fallbackReply {
		t.Fatalf("expected a keyword match, got fallback: %q", reply)
	}
}

func TestMatchReplyFallback(t *testing.T) {
	reply := MatchReply(AudienceStudent, "qwertyuiop")
	if reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", reply)
	}
}
