package repository

import "context"

// 选课/结课映射各占一个独立的存储键（studentId → courseId 列表）。
const (
	keyEnrollments = "courses:enrollments"
	keyCompletions = "courses:completions"
)

// CourseRepository 定义了课程关联表（选课、结课）的持久化操作。
type CourseRepository interface {
	SaveEnrollments(ctx context.Context, enrollments map[string][]string) error
	LoadEnrollments(ctx context.Context) (map[string][]string, error)
	SaveCompletions(ctx context.Context, completions map[string][]string) error
	LoadCompletions(ctx context.Context) (map[string][]string, error)
}

type courseRepository struct {
	kv KVStore
}

// NewCourseRepository 创建一个新的 CourseRepository 实例。
func NewCourseRepository(kv KVStore) CourseRepository {
	return &courseRepository{kv: kv}
}

func (r *courseRepository) SaveEnrollments(ctx context.Context, enrollments map[string][]string) error {
	return putJSON(ctx, r.kv, keyEnrollments, enrollments)
}

func (r *courseRepository) LoadEnrollments(ctx context.Context) (map[string][]string, error) {
	enrollments := make(map[string][]string)
	if err := getJSON(ctx, r.kv, keyEnrollments, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *courseRepository) SaveCompletions(ctx context.Context, completions map[string][]string) error {
	return putJSON(ctx, r.kv, keyCompletions, completions)
}

func (r *courseRepository) LoadCompletions(ctx context.Context) (map[string][]string, error) {
	completions := make(map[string][]string)
	if err := getJSON(ctx, r.kv, keyCompletions, &completions); err != nil {
		return nil, err
	}
	return completions, nil
}
