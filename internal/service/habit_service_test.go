package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
)

func setupTestHabitService() (*habitService, *mockHabitRepo) {
	habitRepo := newMockHabitRepo()
	repo := &repository.Repository{
		Habit: habitRepo,
	}
	svc := NewHabitService(repo, zap.NewNop()).(*habitService)
	// 固定时钟，避免跨午夜的偶发失败
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return svc, habitRepo
}

func TestHabitService_Create_EmptyCompletedDates(t *testing.T) {
	svc, _ := setupTestHabitService()

	habit, err := svc.Create(context.Background(), "user-001", &dto.CreateHabitRequest{
		Name: "晨跑",
		Icon: "🏃",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if habit.CompletedDates == nil || len(habit.CompletedDates) != 0 {
		t.Errorf("新习惯打卡列表应为空数组，实际: %v", habit.CompletedDates)
	}
}

func TestHabitService_Toggle_MarksToday(t *testing.T) {
	svc, _ := setupTestHabitService()

	habit, _ := svc.Create(context.Background(), "user-001", &dto.CreateHabitRequest{Name: "背单词"})

	result, err := svc.Toggle(context.Background(), "user-001", habit.HabitID)
	if err != nil {
		t.Fatalf("Toggle 应成功: %v", err)
	}
	if !result.CompletedDates.Contains("2026-08-31") {
		t.Errorf("当天应已打卡，实际: %v", result.CompletedDates)
	}
}

func TestHabitService_Toggle_TwiceIsNoop(t *testing.T) {
	svc, _ := setupTestHabitService()

	habit, _ := svc.Create(context.Background(), "user-001", &dto.CreateHabitRequest{Name: "早睡"})

	if _, err := svc.Toggle(context.Background(), "user-001", habit.HabitID); err != nil {
		t.Fatalf("第一次 Toggle 应成功: %v", err)
	}
	result, err := svc.Toggle(context.Background(), "user-001", habit.HabitID)
	if err != nil {
		t.Fatalf("第二次 Toggle 应成功: %v", err)
	}
	if result.CompletedDates.Contains("2026-08-31") {
		t.Errorf("两次 Toggle 应相互抵消，实际: %v", result.CompletedDates)
	}
	if len(result.CompletedDates) != 0 {
		t.Errorf("打卡列表应回到空，实际: %v", result.CompletedDates)
	}
}

func TestHabitService_Toggle_PreservesOtherDates(t *testing.T) {
	svc, repo := setupTestHabitService()

	habit, _ := svc.Create(context.Background(), "user-001", &dto.CreateHabitRequest{Name: "阅读"})
	repo.habits[habit.HabitID].CompletedDates = append(repo.habits[habit.HabitID].CompletedDates, "2026-08-29", "2026-08-30")

	result, err := svc.Toggle(context.Background(), "user-001", habit.HabitID)
	if err != nil {
		t.Fatalf("Toggle 应成功: %v", err)
	}
	if !result.CompletedDates.Contains("2026-08-29") || !result.CompletedDates.Contains("2026-08-30") {
		t.Errorf("历史打卡不应被改动，实际: %v", result.CompletedDates)
	}
	if len(result.CompletedDates) != 3 {
		t.Errorf("期望 3 条打卡记录，实际: %v", result.CompletedDates)
	}
}

func TestHabitService_Toggle_NotFound(t *testing.T) {
	svc, _ := setupTestHabitService()

	_, err := svc.Toggle(context.Background(), "user-001", "missing")
	if !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("期望 ErrHabitNotFound，实际: %v", err)
	}
}

func TestHabitService_Toggle_CrossUserNotFound(t *testing.T) {
	svc, _ := setupTestHabitService()

	habit, _ := svc.Create(context.Background(), "user-001", &dto.CreateHabitRequest{Name: "冥想"})

	_, err := svc.Toggle(context.Background(), "user-002", habit.HabitID)
	if !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("期望 ErrHabitNotFound，实际: %v", err)
	}
}
