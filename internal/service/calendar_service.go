package service

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

// CalendarService 学期日历订阅业务接口
//
// 设计说明：
//   - 将学期事件、考试、作业截止日期合成标准 iCalendar (RFC 5545) 订阅源
//   - semesterID 为空时默认取当前活跃学期
//   - 全部以全天事件输出，客户端自行按本地时区渲染
type CalendarService interface {
	// SemesterCalendar 生成学期日历 ICS 内容
	SemesterCalendar(ctx context.Context, userID, semesterID string) (string, error)
}

type calendarService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCalendarService 创建 CalendarService 实例
func NewCalendarService(repo *repository.Repository, logger *zap.Logger) CalendarService {
	return &calendarService{repo: repo, logger: logger}
}

func (s *calendarService) SemesterCalendar(ctx context.Context, userID, semesterID string) (string, error) {
	semester, err := resolveSemester(ctx, s.repo, userID, semesterID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//planio//semester-calendar//CN")
	cal.SetName(semester.Name)

	// 学期事件
	events, err := s.repo.SemesterEvent.ListBySemester(ctx, userID, semester.SemesterID)
	if err != nil {
		s.logger.Error("查询学期事件失败", zap.Error(err))
		return "", err
	}
	for _, ev := range events {
		e := cal.AddEvent(fmt.Sprintf("event-%s@planio", ev.EventID))
		e.SetAllDayStartAt(ev.EventDate)
		e.SetAllDayEndAt(ev.EventDate.AddDate(0, 0, 1))
		e.SetSummary(ev.Title)
		e.SetDescription(fmt.Sprintf("类型: %s", ev.EventType))
		e.SetDtStampTime(ev.CreatedAt)
	}

	// 考试
	exams, err := s.repo.Exam.ListBySemester(ctx, userID, semester.SemesterID)
	if err != nil {
		s.logger.Error("查询考试失败", zap.Error(err))
		return "", err
	}
	for _, exam := range exams {
		e := cal.AddEvent(fmt.Sprintf("exam-%s@planio", exam.ExamID))
		e.SetAllDayStartAt(exam.ExamDate)
		e.SetAllDayEndAt(exam.ExamDate.AddDate(0, 0, 1))
		summary := fmt.Sprintf("考试: %s", exam.Subject)
		if exam.StartTime != "" {
			summary += " " + exam.StartTime
		}
		e.SetSummary(summary)
		if exam.Location != "" {
			e.SetLocation(exam.Location)
		}
		if exam.Notes != "" {
			e.SetDescription(exam.Notes)
		}
		e.SetDtStampTime(exam.CreatedAt)
	}

	// 作业截止日期（已完成的不再提醒）
	assignments, err := s.repo.Assignment.ListBySemester(ctx, userID, semester.SemesterID)
	if err != nil {
		s.logger.Error("查询作业失败", zap.Error(err))
		return "", err
	}
	for _, a := range assignments {
		if a.Status == "completed" {
			continue
		}
		e := cal.AddEvent(fmt.Sprintf("assignment-%s@planio", a.AssignmentID))
		e.SetAllDayStartAt(a.DueDate)
		e.SetAllDayEndAt(a.DueDate.AddDate(0, 0, 1))
		e.SetSummary(fmt.Sprintf("作业截止: %s", a.Title))
		if a.Subject != "" {
			e.SetDescription(fmt.Sprintf("科目: %s", a.Subject))
		}
		e.SetDtStampTime(a.CreatedAt)
	}

	return cal.Serialize(), nil
}
