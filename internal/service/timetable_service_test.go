package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

func setupTestTimetableService() (TimetableService, *mockSemesterRepo, *mockTimetableRepo) {
	semesterRepo := newMockSemesterRepo()
	timetableRepo := newMockTimetableRepo()
	repo := &repository.Repository{
		Semester:  semesterRepo,
		Timetable: timetableRepo,
	}
	return NewTimetableService(repo, zap.NewNop()), semesterRepo, timetableRepo
}

func seedActiveSemester(repo *mockSemesterRepo, userID, id string) {
	semester := &model.Semester{
		SemesterID: id,
		UserID:     userID,
		Name:       "测试学期",
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	}
	semester.CreatedAt = time.Now()
	repo.semesters[id] = semester
}

func TestTimetableService_Create_ResolvesActiveSemester(t *testing.T) {
	svc, semesterRepo, _ := setupTestTimetableService()
	seedActiveSemester(semesterRepo, "user-001", "sem-active")

	entry, err := svc.Create(context.Background(), "user-001", &dto.CreateTimetableEntryRequest{
		Subject:   "线性代数",
		DayOfWeek: 1,
		StartTime: "08:00",
		EndTime:   "09:40",
		Location:  "教三-201",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if entry.SemesterID != "sem-active" {
		t.Errorf("省略 semester_id 时应落入活动学期，实际: %s", entry.SemesterID)
	}
}

func TestTimetableService_Create_NoActiveSemester(t *testing.T) {
	svc, _, _ := setupTestTimetableService()

	_, err := svc.Create(context.Background(), "user-001", &dto.CreateTimetableEntryRequest{
		Subject:   "大学物理",
		DayOfWeek: 2,
		StartTime: "10:00",
		EndTime:   "11:40",
	})
	if !errors.Is(err, ErrNoActiveSemester) {
		t.Errorf("期望 ErrNoActiveSemester，实际: %v", err)
	}
}

func TestTimetableService_Create_ExplicitSemesterMustBeOwn(t *testing.T) {
	svc, semesterRepo, _ := setupTestTimetableService()
	seedActiveSemester(semesterRepo, "user-002", "sem-other")

	_, err := svc.Create(context.Background(), "user-001", &dto.CreateTimetableEntryRequest{
		SemesterID: "sem-other",
		Subject:    "数据结构",
		DayOfWeek:  3,
		StartTime:  "14:00",
		EndTime:    "15:40",
	})
	if !errors.Is(err, ErrSemesterNotFound) {
		t.Errorf("他人学期应视为不存在，实际: %v", err)
	}
}

func TestTimetableService_Create_EndBeforeStart(t *testing.T) {
	svc, semesterRepo, _ := setupTestTimetableService()
	seedActiveSemester(semesterRepo, "user-001", "sem-active")

	_, err := svc.Create(context.Background(), "user-001", &dto.CreateTimetableEntryRequest{
		Subject:   "时序错误",
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "09:00",
	})
	if !errors.Is(err, ErrTimetableTimeInvalid) {
		t.Errorf("期望 ErrTimetableTimeInvalid，实际: %v", err)
	}

	// 开始等于结束同样非法
	_, err = svc.Create(context.Background(), "user-001", &dto.CreateTimetableEntryRequest{
		Subject:   "零时长",
		DayOfWeek: 1,
		StartTime: "10:00",
		EndTime:   "10:00",
	})
	if !errors.Is(err, ErrTimetableTimeInvalid) {
		t.Errorf("期望 ErrTimetableTimeInvalid，实际: %v", err)
	}
}

func TestTimetableService_List_ScopedToSemester(t *testing.T) {
	svc, semesterRepo, timetableRepo := setupTestTimetableService()
	seedActiveSemester(semesterRepo, "user-001", "sem-active")

	timetableRepo.entries["tt-1"] = &model.TimetableEntry{
		EntryID: "tt-1", UserID: "user-001", SemesterID: "sem-active",
		Subject: "高数", DayOfWeek: 2, StartTime: "08:00", EndTime: "09:40",
	}
	timetableRepo.entries["tt-2"] = &model.TimetableEntry{
		EntryID: "tt-2", UserID: "user-001", SemesterID: "sem-old",
		Subject: "往期课程", DayOfWeek: 1, StartTime: "08:00", EndTime: "09:40",
	}

	entries, err := svc.List(context.Background(), "user-001", "")
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryID != "tt-1" {
		t.Errorf("应只返回活动学期的条目，实际: %+v", entries)
	}
}

func TestTimetableService_Update_TimeValidationOnMerge(t *testing.T) {
	svc, semesterRepo, timetableRepo := setupTestTimetableService()
	seedActiveSemester(semesterRepo, "user-001", "sem-active")

	timetableRepo.entries["tt-1"] = &model.TimetableEntry{
		EntryID: "tt-1", UserID: "user-001", SemesterID: "sem-active",
		Subject: "高数", DayOfWeek: 2, StartTime: "08:00", EndTime: "09:40",
	}

	// 仅改开始时间，与原结束时间冲突
	late := "10:00"
	_, err := svc.Update(context.Background(), "user-001", "tt-1", &dto.UpdateTimetableEntryRequest{
		StartTime: &late,
	})
	if !errors.Is(err, ErrTimetableTimeInvalid) {
		t.Errorf("合并后时序非法应被拒绝，实际: %v", err)
	}

	// 合法更新
	location := "教一-105"
	entry, err := svc.Update(context.Background(), "user-001", "tt-1", &dto.UpdateTimetableEntryRequest{
		Location: &location,
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if entry.Location != "教一-105" || entry.Subject != "高数" {
		t.Errorf("白名单合并结果不符: %+v", entry)
	}
}
