// Package seed 提供平台的静态种子数据：岗位目录、课程目录、分类与国家列表，
// 以及面试题库和助手规则表。种子数据是只读的，替代真实后端目录。
package seed

import (
	"internhub-go/internal/model"
	"time"
)

// Categories 是岗位/课程共享的分类列表。
func Categories() []string {
	return []string{
		"Software Development",
		"Data Science",
		"Design",
		"Marketing",
		"Finance",
		"Human Resources",
		"Content Writing",
	}
}

// Countries 是岗位筛选使用的国家列表。
func Countries() []string {
	return []string{
		"India", "United States", "United Kingdom", "Germany",
		"Singapore", "Canada", "Australia", "Remote",
	}
}

// Internships 返回静态岗位目录的一份拷贝，调用方可以安全地追加。
func Internships() []model.Internship {
	out := make([]model.Internship, len(internships))
	copy(out, internships)
	return out
}

// Courses 返回静态课程目录的一份拷贝。
func Courses() []model.Course {
	out := make([]model.Course, len(courses))
	copy(out, courses)
	return out
}

var seedPosted = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

var internships = []model.Internship{
	{
		ID:         "intern-001",
		Title:      "Frontend Developer Intern",
		Company:    "TechNova Solutions",
		EmployerID: "emp-technova",
		Location:   model.Location{Country: "India", City: "Bangalore", IsRemote: false},
		Category:   "Software Development",
		Role:       "Frontend Developer",
		Stipend:    model.Stipend{Amount: 15000, Currency: "INR", IsPaid: true},
		Duration:   "3 months", StartDate: "2025-07-01", ApplicationDeadline: "2025-06-20",
		Responsibilities: []string{
			"Build responsive UI components",
			"Collaborate with designers on implementation",
			"Write unit tests for new features",
		},
		Requirements: []string{"HTML/CSS/JavaScript", "Familiarity with a component framework", "Git basics"},
		Description:  "Work with our product team to ship user-facing features for a fast growing SaaS platform.",
		PostedDate:   seedPosted,
	},
	{
		ID:         "intern-002",
		Title:      "Data Analyst Intern",
		Company:    "Insightly Analytics",
		EmployerID: "emp-insightly",
		Location:   model.Location{Country: "United States", City: "New York", IsRemote: true},
		Category:   "Data Science",
		Role:       "Data Analyst",
		Stipend:    model.Stipend{Amount: 1200, Currency: "USD", IsPaid: true},
		Duration:   "6 months", StartDate: "2025-08-01", ApplicationDeadline: "2025-07-15",
		Responsibilities: []string{
			"Clean and analyse customer datasets",
			"Build dashboards for internal stakeholders",
		},
		Requirements: []string{"SQL", "Python or R", "Statistics fundamentals"},
		Description:  "Remote-friendly internship focused on turning raw product data into actionable insight.",
		PostedDate:   seedPosted,
	},
	{
		ID:         "intern-003",
		Title:      "UI/UX Design Intern",
		Company:    "PixelCraft Studio",
		EmployerID: "emp-pixelcraft",
		Location:   model.Location{Country: "Germany", City: "Berlin", IsRemote: false},
		Category:   "Design",
		Role:       "Product Designer",
		Stipend:    model.Stipend{Amount: 800, Currency: "EUR", IsPaid: true},
		Duration:   "4 months", StartDate: "2025-07-15", ApplicationDeadline: "2025-06-30",
		Responsibilities: []string{
			"Produce wireframes and high fidelity mockups",
			"Run usability tests with real users",
		},
		Requirements: []string{"Figma", "A portfolio of shipped work"},
		Description:  "Join a small studio and own the design of one client project end to end.",
		PostedDate:   seedPosted,
	},
	{
		ID:         "intern-004",
		Title:      "Digital Marketing Intern",
		Company:    "GrowthHive",
		EmployerID: "emp-growthhive",
		Location:   model.Location{Country: "Remote", City: "", IsRemote: true},
		Category:   "Marketing",
		Role:       "Marketing Associate",
		Stipend:    model.Stipend{Amount: 0, Currency: "USD", IsPaid: false},
		Duration:   "2 months", StartDate: "2025-07-01", ApplicationDeadline: "2025-06-25",
		Responsibilities: []string{
			"Plan and schedule social media campaigns",
			"Track campaign metrics and report weekly",
		},
		Requirements: []string{"Strong writing skills", "Basic analytics literacy"},
		Description:  "Unpaid internship with a performance-based stipend after the first month.",
		PostedDate:   seedPosted,
	},
	{
		ID:         "intern-005",
		Title:      "Backend Developer Intern",
		Company:    "CloudKite Labs",
		EmployerID: "emp-cloudkite",
		Location:   model.Location{Country: "Singapore", City: "Singapore", IsRemote: false},
		Category:   "Software Development",
		Role:       "Backend Developer",
		Stipend:    model.Stipend{Amount: 1500, Currency: "SGD", IsPaid: true},
		Duration:   "6 months", StartDate: "2025-09-01", ApplicationDeadline: "2025-08-01",
		Responsibilities: []string{
			"Implement REST APIs",
			"Write integration tests",
			"Participate in on-call shadowing",
		},
		Requirements: []string{"Go or Java", "SQL", "Understanding of HTTP"},
		Description:  "Work on the services powering our logistics platform with a mentor assigned from day one.",
		PostedDate:   seedPosted,
	},
	{
		ID:         "intern-006",
		Title:      "Finance Intern",
		Company:    "Meridian Capital",
		EmployerID: "emp-meridian",
		Location:   model.Location{Country: "United Kingdom", City: "London", IsRemote: false},
		Category:   "Finance",
		Role:       "Financial Analyst",
		Stipend:    model.Stipend{Amount: 1000, Currency: "GBP", IsPaid: true},
		Duration:   "3 months", StartDate: "2025-07-01", ApplicationDeadline: "2025-06-18",
		Responsibilities: []string{
			"Support quarterly reporting",
			"Build valuation models under supervision",
		},
		Requirements: []string{"Excel", "Accounting basics"},
		Description:  "Exposure to both the reporting and deal-analysis sides of a mid-size fund.",
		PostedDate:   seedPosted,
	},
}

var courses = []model.Course{
	{
		ID: "course-001", Title: "Modern Web Development", Category: "Software Development",
		Description: "From semantic HTML to component frameworks and deployment.",
		Duration:    "8 weeks", Level: "Beginner", Instructor: "Sarah Chen",
		Image: "/images/courses/web-dev.png", Enrolled: 1240, Rating: 4.7,
		Topics: []string{"HTML", "CSS", "JavaScript", "React"},
	},
	{
		ID: "course-002", Title: "Data Analysis with Python", Category: "Data Science",
		Description: "Pandas, visualisation and statistics for working analysts.",
		Duration:    "6 weeks", Level: "Intermediate", Instructor: "Rahul Mehta",
		Image: "/images/courses/data-python.png", Enrolled: 980, Rating: 4.6,
		Topics: []string{"Python", "Pandas", "Matplotlib", "Statistics"},
	},
	{
		ID: "course-003", Title: "UI/UX Fundamentals", Category: "Design",
		Description: "Design thinking, wireframing and usability testing.",
		Duration:    "5 weeks", Level: "Beginner", Instructor: "Ana Kovac",
		Image: "/images/courses/uiux.png", Enrolled: 760, Rating: 4.8,
		Topics: []string{"Design Thinking", "Figma", "Prototyping"},
	},
	{
		ID: "course-004", Title: "SQL for Everyone", Category: "Data Science",
		Description: "Querying, joining and modelling relational data.",
		Duration:    "4 weeks", Level: "Beginner", Instructor: "Tom Ellis",
		Image: "/images/courses/sql.png", Enrolled: 1530, Rating: 4.5,
		Topics: []string{"SQL", "Data Modelling"},
	},
	{
		ID: "course-005", Title: "Digital Marketing Essentials", Category: "Marketing",
		Description: "SEO, paid channels and campaign measurement.",
		Duration:    "6 weeks", Level: "Beginner", Instructor: "Priya Nair",
		Image: "/images/courses/marketing.png", Enrolled: 640, Rating: 4.4,
		Topics: []string{"SEO", "Social Media", "Analytics"},
	},
}
