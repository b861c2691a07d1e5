package seed

import "internhub-go/internal/model"

// InterviewQuestions 返回指定角色的固定面试题组；
// 未收录的角色回退到通用题组。
func InterviewQuestions(role string) []string {
	if qs, ok := questionBanks[role]; ok {
		return append([]string(nil), qs...)
	}
	return append([]string(nil), genericQuestions...)
}

var genericQuestions = []string{
	"Tell me about yourself and why you are interested in this role.",
	"Describe a project you are proud of. What was your contribution?",
	"Tell me about a time you received difficult feedback. How did you respond?",
	"Where do you see yourself in two years?",
	"Do you have any questions for us?",
}

var questionBanks = map[string][]string{
	"Frontend Developer": {
		"Explain the difference between the DOM and the virtual DOM.",
		"How would you make a page accessible to screen reader users?",
		"What happens from typing a URL to seeing a rendered page?",
		"How do you decide between local component state and shared state?",
		"Describe a UI bug you fixed recently and how you diagnosed it.",
	},
	"Backend Developer": {
		"How would you design a rate limiter for a public API?",
		"Explain the trade-offs between SQL and document databases.",
		"What is idempotency and why does it matter for write endpoints?",
		"How do you approach debugging a latency regression in production?",
		"Describe how you would version a breaking API change.",
	},
	"Data Analyst": {
		"How do you handle missing values in a dataset?",
		"Explain the difference between correlation and causation with an example.",
		"A metric dropped 20% overnight. Walk me through your investigation.",
		"When would you prefer a median over a mean?",
		"How do you communicate an unwelcome finding to stakeholders?",
	},
	"Product Designer": {
		"Walk me through your design process for a new feature.",
		"How do you validate a design before engineering starts?",
		"Tell me about a time user research changed your mind.",
		"How do you balance business goals against user needs?",
		"Critique the onboarding flow of an app you use daily.",
	},
}

// AnswerFeedback 返回对一次作答的固定反馈语。反馈按作答长度分档，
// 与真实评估无关（平台不接入真实 AI）。
func AnswerFeedback(answer string) string {
	switch {
	case len(answer) < 40:
		return "Your answer is quite brief. Try structuring it with a concrete example and the outcome you achieved."
	case len(answer) < 200:
		return "Good structure. Consider quantifying the impact of your work to make the answer more memorable."
	default:
		return "Thorough answer. Watch the length in a live interview and lead with your conclusion."
	}
}

// OverallFeedback 返回一场面试的固定总体反馈。
func OverallFeedback(answered, total int) model.InterviewFeedback {
	rating := 3
	if total > 0 && answered == total {
		rating = 4
	}
	return model.InterviewFeedback{
		Strengths: []string{
			"Clear communication throughout the session",
			"Answers followed a recognisable structure",
		},
		Improvements: []string{
			"Quantify outcomes with concrete numbers",
			"Spend more time on the 'why' behind decisions",
		},
		Overall: "A solid practice session. Review the per-question feedback and rerun the interview for the same role to measure progress.",
		Rating:  rating,
	}
}
