package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

// ── 跨模块共享业务错误 ──

var (
	// ErrDateInvalid 日期串无法按 "2006-01-02" 解析
	ErrDateInvalid = errors.New("日期格式无效，应为 YYYY-MM-DD")
	// ErrNoActiveSemester 请求省略 semester_id 且用户没有活动学期可供解析
	ErrNoActiveSemester = errors.New("当前没有活动学期，请先创建学期或显式指定 semester_id")
)

// parseDate 解析 "2006-01-02" 日期串
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrDateInvalid
	}
	return t, nil
}

// resolveSemester 解析学期作用域：
//   - 显式给出 semester_id 时校验其归属后返回该学期（他人的学期视为不存在）
//   - 省略时回退到用户当前活动学期
//
// 课程表、作业、考试、学期事件、日历订阅共用此规则
func resolveSemester(ctx context.Context, repo *repository.Repository, userID, explicit string) (*model.Semester, error) {
	if explicit != "" {
		semester, err := repo.Semester.GetByID(ctx, userID, explicit)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrSemesterNotFound
			}
			return nil, err
		}
		return semester, nil
	}

	semester, err := repo.Semester.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveSemester
		}
		return nil, err
	}
	return semester, nil
}

// resolveSemesterID 同 resolveSemester，仅返回学期 ID
func resolveSemesterID(ctx context.Context, repo *repository.Repository, userID, explicit string) (string, error) {
	semester, err := resolveSemester(ctx, repo, userID, explicit)
	if err != nil {
		return "", err
	}
	return semester.SemesterID, nil
}
