package service

import (
	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/config"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/jwt"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth          AuthService
	Semester      SemesterService
	SemesterEvent SemesterEventService
	Timetable     TimetableService
	Assignment    AssignmentService
	Exam          ExamService
	Task          TaskService
	Wallet        WalletService
	Transaction   TransactionService
	Note          NoteService
	Habit         HabitService
	Debt          DebtService
	Event         EventService
	SharedExpense SharedExpenseService
	Export        ExportService
	Calendar      CalendarService
}

// NewService 创建 Service 聚合
// rdb 可为 nil（Redis 降级运行）
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:          NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Semester:      NewSemesterService(repo, logger),
		SemesterEvent: NewSemesterEventService(repo, logger),
		Timetable:     NewTimetableService(repo, logger),
		Assignment:    NewAssignmentService(repo, logger),
		Exam:          NewExamService(repo, logger),
		Task:          NewTaskService(repo, logger),
		Wallet:        NewWalletService(repo, logger),
		Transaction:   NewTransactionService(repo, logger),
		Note:          NewNoteService(repo, logger),
		Habit:         NewHabitService(repo, logger),
		Debt:          NewDebtService(repo, logger),
		Event:         NewEventService(repo, logger),
		SharedExpense: NewSharedExpenseService(repo, logger),
		Export:        NewExportService(repo, logger),
		Calendar:      NewCalendarService(repo, logger),
	}
}
