package model

// Course 代表一门课程。课程目录来自静态种子数据，本身不可变。
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Level       string   `json:"level"`
	Instructor  string   `json:"instructor"`
	Image       string   `json:"image"`
	Enrolled    int      `json:"enrolled"`
	Rating      float64  `json:"rating"`
	Topics      []string `json:"topics"`
}
