package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

// ── Mock SemesterRepository ──
//
// 所有查询按 user_id 过滤，与真实实现的归属语义一致

type mockSemesterRepo struct {
	semesters map[string]*model.Semester
	seq       int // 保证 created_at 严格递增
}

func newMockSemesterRepo() *mockSemesterRepo {
	return &mockSemesterRepo{semesters: make(map[string]*model.Semester)}
}

func (m *mockSemesterRepo) Create(_ context.Context, semester *model.Semester) error {
	if semester.SemesterID == "" {
		semester.SemesterID = fmt.Sprintf("sem-%d", len(m.semesters)+1)
	}
	// 模拟部分唯一索引：同一用户不允许两条 活动且未归档 记录
	if semester.IsActive && !semester.IsArchived {
		for _, s := range m.semesters {
			if s.UserID == semester.UserID && s.IsActive && !s.IsArchived {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	m.seq++
	semester.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	semester.UpdatedAt = semester.CreatedAt
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) GetByID(_ context.Context, userID, id string) (*model.Semester, error) {
	if s, ok := m.semesters[id]; ok && s.UserID == userID {
		copied := *s
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterRepo) GetActive(_ context.Context, userID string) (*model.Semester, error) {
	var latest *model.Semester
	for _, s := range m.semesters {
		if s.UserID == userID && s.IsActive && !s.IsArchived {
			if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
				latest = s
			}
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *latest
	return &copied, nil
}

func (m *mockSemesterRepo) ListAll(_ context.Context, userID string) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if s.UserID == userID && !s.IsArchived {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockSemesterRepo) ListArchived(_ context.Context, userID string) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if s.UserID == userID && s.IsArchived {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EndDate.After(result[j].EndDate) })
	return result, nil
}

func (m *mockSemesterRepo) ListExpiredArchived(_ context.Context, userID string, now time.Time) ([]model.Semester, error) {
	var result []model.Semester
	for _, s := range m.semesters {
		if s.UserID == userID && s.IsArchived && s.EndDate.Before(now) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].EndDate.After(result[j].EndDate) })
	return result, nil
}

func (m *mockSemesterRepo) Update(_ context.Context, semester *model.Semester) error {
	if semester.IsActive && !semester.IsArchived {
		for _, s := range m.semesters {
			if s.UserID == semester.UserID && s.SemesterID != semester.SemesterID && s.IsActive && !s.IsArchived {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	semester.UpdatedAt = time.Now()
	m.semesters[semester.SemesterID] = semester
	return nil
}

func (m *mockSemesterRepo) DeactivateAll(_ context.Context, userID string) error {
	for _, s := range m.semesters {
		if s.UserID == userID {
			s.IsActive = false
		}
	}
	return nil
}

// ── Mock SemesterEventRepository ──

type mockSemesterEventRepo struct {
	events map[string]*model.SemesterEvent
}

func newMockSemesterEventRepo() *mockSemesterEventRepo {
	return &mockSemesterEventRepo{events: make(map[string]*model.SemesterEvent)}
}

func (m *mockSemesterEventRepo) Create(_ context.Context, event *model.SemesterEvent) error {
	if event.EventID == "" {
		event.EventID = fmt.Sprintf("sev-%d", len(m.events)+1)
	}
	m.events[event.EventID] = event
	return nil
}

func (m *mockSemesterEventRepo) GetByID(_ context.Context, userID, id string) (*model.SemesterEvent, error) {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSemesterEventRepo) ListBySemester(_ context.Context, userID, semesterID string) ([]model.SemesterEvent, error) {
	var result []model.SemesterEvent
	for _, e := range m.events {
		if e.UserID == userID && e.SemesterID == semesterID {
			result = append(result, *e)
		}
	}
	return result, nil
}

func (m *mockSemesterEventRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := m.events[id]; ok && e.UserID == userID {
		delete(m.events, id)
	}
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]*model.Assignment
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]*model.Assignment)}
}

func (m *mockAssignmentRepo) Create(_ context.Context, assignment *model.Assignment) error {
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = fmt.Sprintf("asg-%d", len(m.assignments)+1)
	}
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) GetByID(_ context.Context, userID, id string) (*model.Assignment, error) {
	if a, ok := m.assignments[id]; ok && a.UserID == userID {
		copied := *a
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListBySemester(_ context.Context, userID, semesterID string) ([]model.Assignment, error) {
	var result []model.Assignment
	for _, a := range m.assignments {
		if a.UserID == userID && a.SemesterID == semesterID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (m *mockAssignmentRepo) Update(_ context.Context, assignment *model.Assignment) error {
	m.assignments[assignment.AssignmentID] = assignment
	return nil
}

func (m *mockAssignmentRepo) Delete(_ context.Context, userID, id string) error {
	if a, ok := m.assignments[id]; ok && a.UserID == userID {
		delete(m.assignments, id)
	}
	return nil
}

// ── Mock ExamRepository ──

type mockExamRepo struct {
	exams map[string]*model.Exam
}

func newMockExamRepo() *mockExamRepo {
	return &mockExamRepo{exams: make(map[string]*model.Exam)}
}

func (m *mockExamRepo) Create(_ context.Context, exam *model.Exam) error {
	if exam.ExamID == "" {
		exam.ExamID = fmt.Sprintf("exam-%d", len(m.exams)+1)
	}
	m.exams[exam.ExamID] = exam
	return nil
}

func (m *mockExamRepo) GetByID(_ context.Context, userID, id string) (*model.Exam, error) {
	if e, ok := m.exams[id]; ok && e.UserID == userID {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockExamRepo) ListBySemester(_ context.Context, userID, semesterID string) ([]model.Exam, error) {
	var result []model.Exam
	for _, e := range m.exams {
		if e.UserID == userID && e.SemesterID == semesterID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ExamDate.Before(result[j].ExamDate) })
	return result, nil
}

func (m *mockExamRepo) Update(_ context.Context, exam *model.Exam) error {
	m.exams[exam.ExamID] = exam
	return nil
}

func (m *mockExamRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := m.exams[id]; ok && e.UserID == userID {
		delete(m.exams, id)
	}
	return nil
}

// ── Mock TimetableRepository ──

type mockTimetableRepo struct {
	entries map[string]*model.TimetableEntry
}

func newMockTimetableRepo() *mockTimetableRepo {
	return &mockTimetableRepo{entries: make(map[string]*model.TimetableEntry)}
}

func (m *mockTimetableRepo) Create(_ context.Context, entry *model.TimetableEntry) error {
	if entry.EntryID == "" {
		entry.EntryID = fmt.Sprintf("tt-%d", len(m.entries)+1)
	}
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockTimetableRepo) GetByID(_ context.Context, userID, id string) (*model.TimetableEntry, error) {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimetableRepo) ListBySemester(_ context.Context, userID, semesterID string) ([]model.TimetableEntry, error) {
	var result []model.TimetableEntry
	for _, e := range m.entries {
		if e.UserID == userID && e.SemesterID == semesterID {
			result = append(result, *e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DayOfWeek != result[j].DayOfWeek {
			return result[i].DayOfWeek < result[j].DayOfWeek
		}
		return result[i].StartTime < result[j].StartTime
	})
	return result, nil
}

func (m *mockTimetableRepo) Update(_ context.Context, entry *model.TimetableEntry) error {
	m.entries[entry.EntryID] = entry
	return nil
}

func (m *mockTimetableRepo) Delete(_ context.Context, userID, id string) error {
	if e, ok := m.entries[id]; ok && e.UserID == userID {
		delete(m.entries, id)
	}
	return nil
}

// ── Mock TaskRepository ──

type mockTaskRepo struct {
	tasks map[string]*model.Task
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[string]*model.Task)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		task.TaskID = fmt.Sprintf("task-%d", len(m.tasks)+1)
	}
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, userID, id string) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok && t.UserID == userID {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) List(_ context.Context, userID string) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.TaskID] = task
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, userID, id string) error {
	if t, ok := m.tasks[id]; ok && t.UserID == userID {
		delete(m.tasks, id)
	}
	return nil
}

// ── Mock WalletRepository ──

type mockWalletRepo struct {
	wallets map[string]*model.Wallet
}

func newMockWalletRepo() *mockWalletRepo {
	return &mockWalletRepo{wallets: make(map[string]*model.Wallet)}
}

func (m *mockWalletRepo) Create(_ context.Context, wallet *model.Wallet) error {
	if wallet.WalletID == "" {
		wallet.WalletID = fmt.Sprintf("wal-%d", len(m.wallets)+1)
	}
	m.wallets[wallet.WalletID] = wallet
	return nil
}

func (m *mockWalletRepo) GetByID(_ context.Context, userID, id string) (*model.Wallet, error) {
	if w, ok := m.wallets[id]; ok && w.UserID == userID {
		copied := *w
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockWalletRepo) List(_ context.Context, userID string) ([]model.Wallet, error) {
	var result []model.Wallet
	for _, w := range m.wallets {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (m *mockWalletRepo) Update(_ context.Context, wallet *model.Wallet) error {
	m.wallets[wallet.WalletID] = wallet
	return nil
}

func (m *mockWalletRepo) Delete(_ context.Context, userID, id string) error {
	if w, ok := m.wallets[id]; ok && w.UserID == userID {
		delete(m.wallets, id)
	}
	return nil
}

// ── Mock TransactionRepository ──

type mockTransactionRepo struct {
	txs map[string]*model.Transaction
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{txs: make(map[string]*model.Transaction)}
}

func (m *mockTransactionRepo) Create(_ context.Context, tx *model.Transaction) error {
	if tx.TransactionID == "" {
		tx.TransactionID = fmt.Sprintf("txn-%d", len(m.txs)+1)
	}
	m.txs[tx.TransactionID] = tx
	return nil
}

func (m *mockTransactionRepo) GetByID(_ context.Context, userID, id string) (*model.Transaction, error) {
	if t, ok := m.txs[id]; ok && t.UserID == userID {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTransactionRepo) List(_ context.Context, userID string) ([]model.Transaction, error) {
	var result []model.Transaction
	for _, t := range m.txs {
		if t.UserID == userID {
			result = append(result, *t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OccurredOn.After(result[j].OccurredOn) })
	return result, nil
}

func (m *mockTransactionRepo) ListByDateRange(_ context.Context, userID string, from, to time.Time) ([]model.Transaction, error) {
	var result []model.Transaction
	for _, t := range m.txs {
		if t.UserID == userID && !t.OccurredOn.Before(from) && !t.OccurredOn.After(to) {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (m *mockTransactionRepo) Update(_ context.Context, tx *model.Transaction) error {
	m.txs[tx.TransactionID] = tx
	return nil
}

func (m *mockTransactionRepo) Delete(_ context.Context, userID, id string) error {
	if t, ok := m.txs[id]; ok && t.UserID == userID {
		delete(m.txs, id)
	}
	return nil
}

// ── Mock HabitRepository ──

type mockHabitRepo struct {
	habits map[string]*model.Habit
}

func newMockHabitRepo() *mockHabitRepo {
	return &mockHabitRepo{habits: make(map[string]*model.Habit)}
}

func (m *mockHabitRepo) Create(_ context.Context, habit *model.Habit) error {
	if habit.HabitID == "" {
		habit.HabitID = fmt.Sprintf("hab-%d", len(m.habits)+1)
	}
	m.habits[habit.HabitID] = habit
	return nil
}

func (m *mockHabitRepo) GetByID(_ context.Context, userID, id string) (*model.Habit, error) {
	if h, ok := m.habits[id]; ok && h.UserID == userID {
		copied := *h
		copied.CompletedDates = append(model.StringArray{}, h.CompletedDates...)
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHabitRepo) List(_ context.Context, userID string) ([]model.Habit, error) {
	var result []model.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			result = append(result, *h)
		}
	}
	return result, nil
}

func (m *mockHabitRepo) Update(_ context.Context, habit *model.Habit) error {
	m.habits[habit.HabitID] = habit
	return nil
}

func (m *mockHabitRepo) Delete(_ context.Context, userID, id string) error {
	if h, ok := m.habits[id]; ok && h.UserID == userID {
		delete(m.habits, id)
	}
	return nil
}
