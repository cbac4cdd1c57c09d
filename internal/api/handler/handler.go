package handler

import "github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth          *AuthHandler
	Semester      *SemesterHandler
	Timetable     *TimetableHandler
	Assignment    *AssignmentHandler
	Exam          *ExamHandler
	Task          *TaskHandler
	Wallet        *WalletHandler
	Transaction   *TransactionHandler
	Note          *NoteHandler
	Habit         *HabitHandler
	Debt          *DebtHandler
	Event         *EventHandler
	SharedExpense *SharedExpenseHandler
	Export        *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:          NewAuthHandler(svc.Auth),
		Semester:      NewSemesterHandler(svc.Semester, svc.SemesterEvent),
		Timetable:     NewTimetableHandler(svc.Timetable),
		Assignment:    NewAssignmentHandler(svc.Assignment),
		Exam:          NewExamHandler(svc.Exam),
		Task:          NewTaskHandler(svc.Task),
		Wallet:        NewWalletHandler(svc.Wallet),
		Transaction:   NewTransactionHandler(svc.Transaction),
		Note:          NewNoteHandler(svc.Note),
		Habit:         NewHabitHandler(svc.Habit),
		Debt:          NewDebtHandler(svc.Debt),
		Event:         NewEventHandler(svc.Event),
		SharedExpense: NewSharedExpenseHandler(svc.SharedExpense),
		Export:        NewExportHandler(svc.Export, svc.Calendar),
	}
}
