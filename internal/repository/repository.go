package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User          UserRepository
	Semester      SemesterRepository
	SemesterEvent SemesterEventRepository
	Timetable     TimetableRepository
	Assignment    AssignmentRepository
	Exam          ExamRepository
	Task          TaskRepository
	Wallet        WalletRepository
	Transaction   TransactionRepository
	Note          NoteRepository
	Habit         HabitRepository
	Debt          DebtRepository
	Event         EventRepository
	SharedExpense SharedExpenseRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:            db,
		User:          NewUserRepo(db),
		Semester:      NewSemesterRepo(db),
		SemesterEvent: NewSemesterEventRepo(db),
		Timetable:     NewTimetableRepo(db),
		Assignment:    NewAssignmentRepo(db),
		Exam:          NewExamRepo(db),
		Task:          NewTaskRepo(db),
		Wallet:        NewWalletRepo(db),
		Transaction:   NewTransactionRepo(db),
		Note:          NewNoteRepo(db),
		Habit:         NewHabitRepo(db),
		Debt:          NewDebtRepo(db),
		Event:         NewEventRepo(db),
		SharedExpense: NewSharedExpenseRepo(db),
	}
}

// BeginTx 开启事务，返回事务连接
// 测试场景下 db 可能为 nil（Mock Repository），此时返回 nil 事务，WithTx 原样返回自身
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到指定事务连接的 Repository 聚合
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}
