// Package model 包含了应用的数据模型定义。
package model

// Role 表示平台上的用户角色。角色在创建后不可变更。
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

// Valid 判断给定角色是否为平台支持的角色。
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleEmployer
}

// EmployerProfile 仅存在于雇主账号上的附加信息。
type EmployerProfile struct {
	Company string `json:"company"`
}

// User 代表持久化在会话记录中的当前用户。
// Employer 字段当且仅当 Role 为 employer 时非 nil，
// 这是"company 只出现在雇主记录上"这一变体约束的 Go 表达。
type User struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Role         Role             `json:"role"`
	ProfileImage string           `json:"profileImage"`
	Employer     *EmployerProfile `json:"employer,omitempty"`
}

// Company 返回雇主账号的公司名；学生账号返回空字符串。
func (u *User) Company() string {
	if u.Employer != nil {
		return u.Employer.Company
	}
	return ""
}
