package service

import (
	"context"
	"internhub-go/internal/model"
	"internhub-go/internal/repository"
	"internhub-go/internal/seed"
	"internhub-go/pkg/events"
	"internhub-go/pkg/log"
	"internhub-go/pkg/token"
	"sync"
	"time"
)

// EventPublisher 将平台事件发布到事件总线。发布是尽力而为的：
// 失败只记录日志，不影响状态持有者的数据。
type EventPublisher func(evt events.PlatformEvent) error

// InternshipIndexer 将岗位写入搜索索引。
type InternshipIndexer interface {
	IndexInternship(ctx context.Context, i model.Internship) error
}

// ApplyInput 是提交申请时的可选字段。
type ApplyInput struct {
	CoverLetter string `json:"coverLetter"`
}

// CreateInternshipInput 是雇主发布岗位时提供的字段。
type CreateInternshipInput struct {
	Title               string         `json:"title" binding:"required"`
	Company             string         `json:"company" binding:"required"`
	EmployerID          string         `json:"-"`
	Location            model.Location `json:"location"`
	Category            string         `json:"category"`
	Role                string         `json:"role"`
	Stipend             model.Stipend  `json:"stipend"`
	Duration            string         `json:"duration"`
	StartDate           string         `json:"startDate"`
	ApplicationDeadline string         `json:"applicationDeadline"`
	Responsibilities    []string       `json:"responsibilities"`
	Requirements        []string       `json:"requirements"`
	Description         string         `json:"description"`
}

// InternshipService 接口定义了岗位目录状态持有者的所有操作。
//
// 目录由种子数据加上用户发布的岗位组成；申请列表与收藏映射是两张
// 派生关联表。三个集合各占一个持久化键，每次变更整键重写。
// 查询操作是纯内存过滤，不做任何 I/O；未命中返回 nil 而不是错误。
type InternshipService interface {
	GetInternship(id string) *model.Internship
	ListInternships() []model.Internship
	Categories() []string
	Countries() []string
	Apply(ctx context.Context, internshipID, studentID string, input ApplyInput) (*model.Application, error)
	SaveInternship(ctx context.Context, studentID, internshipID string) error
	UnsaveInternship(ctx context.Context, studentID, internshipID string) error
	GetSavedInternships(studentID string) []model.Internship
	GetStudentApplications(studentID string) []model.Application
	GetEmployerInternships(employerID string) []model.Internship
	GetApplicationsForInternship(internshipID string) []model.Application
	CreateInternship(ctx context.Context, input CreateInternshipInput) (*model.Internship, error)
	UpdateApplicationStatus(ctx context.Context, applicationID string, status model.ApplicationStatus) (*model.Application, error)
}

type internshipService struct {
	mu           sync.Mutex
	internships  []model.Internship
	applications []model.Application
	saved        map[string][]string // studentId → internshipId 列表

	repo    repository.InternshipRepository
	publish EventPublisher
	indexer InternshipIndexer
}

// NewInternshipService 创建岗位目录状态持有者：加载种子目录，
// 再叠加持久化的发布岗位、申请列表与收藏映射。
func NewInternshipService(repo repository.InternshipRepository, publish EventPublisher, indexer InternshipIndexer) (InternshipService, error) {
	s := &internshipService{
		internships: seed.Internships(),
		saved:       make(map[string][]string),
		repo:        repo,
		publish:     publish,
		indexer:     indexer,
	}

	ctx := context.Background()
	posted, err := repo.LoadPosted(ctx)
	if err != nil {
		return nil, err
	}
	s.internships = append(s.internships, posted...)

	apps, err := repo.LoadApplications(ctx)
	if err != nil {
		return nil, err
	}
	s.applications = apps

	saved, err := repo.LoadSavedMap(ctx)
	if err != nil {
		return nil, err
	}
	if saved != nil {
		s.saved = saved
	}
	return s, nil
}

// GetInternship 按 id 线性扫描目录；未命中返回 nil。
func (s *internshipService) GetInternship(id string) *model.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.internships {
		if s.internships[i].ID == id {
			out := s.internships[i]
			return &out
		}
	}
	return nil
}

// ListInternships 返回完整目录的一份拷贝。
func (s *internshipService) ListInternships() []model.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Internship, len(s.internships))
	copy(out, s.internships)
	return out
}

// Categories 返回可用的岗位类别（静态种子数据）。
func (s *internshipService) Categories() []string {
	return seed.Categories()
}

// Countries 返回可用的岗位国家（静态种子数据）。
func (s *internshipService) Countries() []string {
	return seed.Countries()
}

// Apply 合成申请 id 与申请时间，追加到申请列表并整键持久化。
// 不做重复申请检查（现状保留）。持久化失败时列表不变。
func (s *internshipService) Apply(ctx context.Context, internshipID, studentID string, input ApplyInput) (*model.Application, error) {
	app := model.Application{
		ID:           token.NewID("app"),
		InternshipID: internshipID,
		StudentID:    studentID,
		Status:       model.StatusPending,
		AppliedDate:  time.Now(),
		CoverLetter:  input.CoverLetter,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]model.Application(nil), s.applications...), app)
	if err := s.repo.SaveApplications(ctx, next); err != nil {
		return nil, err
	}
	s.applications = next

	s.emit(events.PlatformEvent{
		Type:         events.TypeApplicationSubmitted,
		UserID:       studentID,
		InternshipID: internshipID,
		Title:        s.titleLocked(internshipID),
	})
	return &app, nil
}

// SaveInternship 幂等地将岗位加入学生的收藏集合并整键持久化。
func (s *internshipService) SaveInternship(ctx context.Context, studentID, internshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.saved[studentID]
	for _, id := range current {
		if id == internshipID {
			return nil // 已收藏，重复保存无额外效果
		}
	}

	next := copySavedMap(s.saved)
	next[studentID] = append(next[studentID], internshipID)
	if err := s.repo.SaveSavedMap(ctx, next); err != nil {
		return err
	}
	s.saved = next
	return nil
}

// UnsaveInternship 幂等地将岗位移出学生的收藏集合并整键持久化。
func (s *internshipService) UnsaveInternship(ctx context.Context, studentID, internshipID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.saved[studentID]
	idx := -1
	for i, id := range current {
		if id == internshipID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := copySavedMap(s.saved)
	next[studentID] = append(append([]string(nil), current[:idx]...), current[idx+1:]...)
	if len(next[studentID]) == 0 {
		delete(next, studentID)
	}
	if err := s.repo.SaveSavedMap(ctx, next); err != nil {
		return err
	}
	s.saved = next
	return nil
}

// GetSavedInternships 返回学生收藏的岗位记录（纯内存过滤）。
func (s *internshipService) GetSavedInternships(studentID string) []model.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Internship, 0)
	for _, id := range s.saved[studentID] {
		for i := range s.internships {
			if s.internships[i].ID == id {
				out = append(out, s.internships[i])
				break
			}
		}
	}
	return out
}

// GetStudentApplications 返回学生的全部申请，按提交顺序。
func (s *internshipService) GetStudentApplications(studentID string) []model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Application, 0)
	for _, app := range s.applications {
		if app.StudentID == studentID {
			out = append(out, app)
		}
	}
	return out
}

// GetEmployerInternships 返回某雇主发布的全部岗位。
func (s *internshipService) GetEmployerInternships(employerID string) []model.Internship {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Internship, 0)
	for _, i := range s.internships {
		if i.EmployerID == employerID {
			out = append(out, i)
		}
	}
	return out
}

// GetApplicationsForInternship 返回某岗位收到的全部申请。
func (s *internshipService) GetApplicationsForInternship(internshipID string) []model.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Application, 0)
	for _, app := range s.applications {
		if app.InternshipID == internshipID {
			out = append(out, app)
		}
	}
	return out
}

// CreateInternship 合成岗位 id 与发布时间，追加到目录并持久化发布增量，
// 然后写入搜索索引并发布岗位上线事件。
func (s *internshipService) CreateInternship(ctx context.Context, input CreateInternshipInput) (*model.Internship, error) {
	internship := model.Internship{
		ID:                  token.NewID("intern"),
		Title:               input.Title,
		Company:             input.Company,
		EmployerID:          input.EmployerID,
		Location:            input.Location,
		Category:            input.Category,
		Role:                input.Role,
		Stipend:             input.Stipend,
		Duration:            input.Duration,
		StartDate:           input.StartDate,
		ApplicationDeadline: input.ApplicationDeadline,
		Responsibilities:    input.Responsibilities,
		Requirements:        input.Requirements,
		Description:         input.Description,
		PostedDate:          time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// 持久化的是种子目录之外的发布增量
	posted := make([]model.Internship, 0)
	seeded := seed.Internships()
	for _, i := range s.internships {
		if !containsID(seeded, i.ID) {
			posted = append(posted, i)
		}
	}
	posted = append(posted, internship)
	if err := s.repo.SavePosted(ctx, posted); err != nil {
		return nil, err
	}
	s.internships = append(s.internships, internship)

	if s.indexer != nil {
		if err := s.indexer.IndexInternship(ctx, internship); err != nil {
			log.Warnf("岗位写入搜索索引失败: %s, error: %v", internship.ID, err)
		}
	}
	s.emit(events.PlatformEvent{
		Type:         events.TypeInternshipPosted,
		UserID:       internship.EmployerID,
		InternshipID: internship.ID,
		Title:        internship.Title,
	})
	return &internship, nil
}

// UpdateApplicationStatus 按 id 原地替换申请状态并整键持久化。
// 未找到申请时返回 (nil, nil)，由调用方判空。
func (s *internshipService) UpdateApplicationStatus(ctx context.Context, applicationID string, status model.ApplicationStatus) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.applications {
		if s.applications[i].ID == applicationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	next := append([]model.Application(nil), s.applications...)
	next[idx].Status = status
	if err := s.repo.SaveApplications(ctx, next); err != nil {
		return nil, err
	}
	s.applications = next

	updated := next[idx]
	s.emit(events.PlatformEvent{
		Type:         events.TypeApplicationStatus,
		UserID:       updated.StudentID,
		InternshipID: updated.InternshipID,
		Title:        s.titleLocked(updated.InternshipID),
		Status:       string(status),
	})
	return &updated, nil
}

// emit 发布平台事件；发布失败只记录日志。
func (s *internshipService) emit(evt events.PlatformEvent) {
	if s.publish == nil {
		return
	}
	if err := s.publish(evt); err != nil {
		log.Warnf("发布平台事件失败: type=%s, error: %v", evt.Type, err)
	}
}

// titleLocked 取岗位标题用于事件载荷。调用方必须持有锁。
func (s *internshipService) titleLocked(internshipID string) string {
	for i := range s.internships {
		if s.internships[i].ID == internshipID {
			return s.internships[i].Title
		}
	}
	return ""
}

func copySavedMap(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}

func containsID(list []model.Internship, id string) bool {
	for _, i := range list {
		if i.ID == id {
			return true
		}
	}
	return false
}
