package seed

import "strings"

// Audience 标识助手规则表面向的用户群体，三套规则互不重叠。
type Audience string

const (
	AudienceGuest    Audience = "guest"
	AudienceStudent  Audience = "student"
	AudienceEmployer Audience = "employer"
)

// ReplyRule 是一条关键词应答规则：输入小写后包含任一关键词即命中。
type ReplyRule struct {
	Keywords []string
	Reply    string
}

// WelcomeMessage 返回面向指定用户的欢迎语。
func WelcomeMessage(audience Audience, name string) string {
	switch audience {
	case AudienceStudent:
		return "Hi " + name + "! I can help you find internships, track applications and pick courses. What would you like to do?"
	case AudienceEmployer:
		return "Hello " + name + "! I can help you post internships and review applicants. How can I help?"
	default:
		return "Welcome to InternHub! Sign in to get personalised help, or ask me about what the platform offers."
	}
}

// MatchReply 在对应群体的规则表中查找应答。
// 未命中任何关键词时返回通用提示语。
func MatchReply(audience Audience, input string) string {
	lowered := strings.ToLower(input)
	for _, rule := range ruleTables[audience] {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				return rule.Reply
			}
		}
	}
	return fallbackReply
}

// ApologyReply 是应答生成失败时使用的固定致歉语。
const ApologyReply = "Sorry, something went wrong while preparing a reply. Please try asking again."

const fallbackReply = "I'm not sure I follow. You can ask me about internships, applications, courses or your profile."

var ruleTables = map[Audience][]ReplyRule{
	AudienceGuest: {
		{Keywords: []string{"sign up", "register", "account"},
			Reply: "You can create a free account as a student or an employer from the sign-up page."},
		{Keywords: []string{"internship", "job"},
			Reply: "InternHub lists internships across software, data, design, marketing and finance. Sign in to apply."},
		{Keywords: []string{"course"},
			Reply: "We offer short self-paced courses. Create a student account to enroll."},
		{Keywords: []string{"hello", "hi "},
			Reply: "Hello! Ask me anything about the platform."},
	},
	AudienceStudent: {
		{Keywords: []string{"apply", "application"},
			Reply: "Open an internship and press Apply. You can track every application from your dashboard."},
		{Keywords: []string{"save", "bookmark"},
			Reply: "Use the save button on a listing to keep it on your saved list. Saving twice has no extra effect."},
		{Keywords: []string{"course", "enroll", "learn"},
			Reply: "Browse the course catalog and press Enroll. Completed courses show up on your profile."},
		{Keywords: []string{"interview"},
			Reply: "Try the mock interview: pick a role and I'll run you through a fixed question set with feedback."},
		{Keywords: []string{"resume", "cv"},
			Reply: "Upload your resume in the resume builder. Note that the file itself is kept only for this session."},
		{Keywords: []string{"status"},
			Reply: "Application statuses are pending, reviewing, shortlisted, rejected or accepted. Employers update them."},
	},
	AudienceEmployer: {
		{Keywords: []string{"post", "create", "new internship"},
			Reply: "Use Post Internship on your dashboard. The listing goes live immediately."},
		{Keywords: []string{"applicant", "application", "candidates"},
			Reply: "Open one of your listings to see its applications and update their status."},
		{Keywords: []string{"shortlist", "reject", "accept"},
			Reply: "Set an application's status from its detail view. Candidates see the change right away."},
		{Keywords: []string{"profile", "company"},
			Reply: "Your company name is shown on every listing you post. Edit it in settings."},
	},
}
