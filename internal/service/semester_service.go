package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/repository"
	pkgerrors "github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/errors"
)

// ── 学期模块业务错误 ──

var (
	ErrSemesterNotFound    = errors.New("学期不存在")
	ErrSemesterDateInvalid = errors.New("学期结束日期必须晚于开始日期")
	ErrSemesterArchived    = errors.New("已归档学期不能再次激活")
)

// SemesterService 学期生命周期业务接口
//
// 不变量：每个用户最多存在一个 活动且未归档 的学期。
// Create / Update(激活) 的 先失效旧学期+写入 两步在同一事务内完成；
// 数据库部分唯一索引兜底并发写入，失败方收到 pkg/errors.ErrActiveConflict。
type SemesterService interface {
	GetActive(ctx context.Context, userID string) (*dto.SemesterResponse, error)
	GetByID(ctx context.Context, userID, id string) (*dto.SemesterResponse, error)
	ListAll(ctx context.Context, userID string) ([]dto.SemesterResponse, error)
	ListArchived(ctx context.Context, userID string) ([]dto.SemesterResponse, error)
	History(ctx context.Context, userID string) ([]dto.SemesterResponse, error)
	Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error)
	Update(ctx context.Context, userID, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error)
	Archive(ctx context.Context, userID, id string) (*dto.SemesterResponse, error)
	CheckExpiration(ctx context.Context, userID string) (*dto.ExpirationCheckResponse, error)
}

type semesterService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 可注入的时钟，便于测试过期逻辑
}

// NewSemesterService 创建 SemesterService 实例
func NewSemesterService(repo *repository.Repository, logger *zap.Logger) SemesterService {
	return &semesterService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── GetActive ──────────────────────

// GetActive 返回当前活动学期；不存在时返回 (nil, nil)
// 「没有活动学期」是新用户的正常状态，不视为错误
func (s *semesterService) GetActive(ctx context.Context, userID string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("查询活动学期失败", zap.Error(err))
		return nil, err
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *semesterService) GetByID(ctx context.Context, userID, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── ListAll ──────────────────────

func (s *semesterService) ListAll(ctx context.Context, userID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListAll(ctx, userID)
	if err != nil {
		s.logger.Error("列出学期失败", zap.Error(err))
		return nil, err
	}
	return s.toSemesterResponses(semesters), nil
}

// ────────────────────── ListArchived ──────────────────────

func (s *semesterService) ListArchived(ctx context.Context, userID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListArchived(ctx, userID)
	if err != nil {
		s.logger.Error("列出归档学期失败", zap.Error(err))
		return nil, err
	}
	return s.toSemesterResponses(semesters), nil
}

// ────────────────────── History ──────────────────────

// History 返回已归档且结束日期已过的历史学期
func (s *semesterService) History(ctx context.Context, userID string) ([]dto.SemesterResponse, error) {
	semesters, err := s.repo.Semester.ListExpiredArchived(ctx, userID, s.now())
	if err != nil {
		s.logger.Error("查询学期历史失败", zap.Error(err))
		return nil, err
	}
	return s.toSemesterResponses(semesters), nil
}

// ────────────────────── Create ──────────────────────

// Create 创建并激活新学期：先失效该用户所有活动学期，再插入活动记录。
// 两步处于同一事务；后创建者总是胜出（last-writer-activates）。
func (s *semesterService) Create(ctx context.Context, userID string, req *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrSemesterDateInvalid
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrSemesterDateInvalid
	}
	if !endDate.After(startDate) {
		return nil, ErrSemesterDateInvalid
	}

	semester := &model.Semester{
		UserID:     userID,
		Name:       req.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		Holidays:   model.StringArray(req.Holidays),
		IsActive:   true,
		IsArchived: false,
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Semester.DeactivateAll(ctx, userID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("失效旧活动学期失败", zap.Error(err))
		return nil, err
	}

	if err := txRepo.Semester.Create(ctx, semester); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.ErrActiveConflict
		}
		s.logger.Error("创建学期失败", zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, pkgerrors.ErrActiveConflict
			}
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── Update ──────────────────────

// Update 白名单字段合并；将 is_active 置为 true 时先失效其余活动学期（同事务）
func (s *semesterService) Update(ctx context.Context, userID, id string, req *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		semester.Name = *req.Name
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, ErrSemesterDateInvalid
		}
		semester.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, ErrSemesterDateInvalid
		}
		semester.EndDate = endDate
	}
	if !semester.EndDate.After(semester.StartDate) {
		return nil, ErrSemesterDateInvalid
	}
	if req.Holidays != nil {
		semester.Holidays = model.StringArray(*req.Holidays)
	}

	// 激活路径：归档学期永不参与激活
	activating := req.IsActive != nil && *req.IsActive && !semester.IsActive
	if activating && semester.IsArchived {
		return nil, ErrSemesterArchived
	}
	if req.IsActive != nil {
		semester.IsActive = *req.IsActive
	}

	if !activating {
		// 普通字段合并，无需事务
		if err := s.repo.Semester.Update(ctx, semester); err != nil {
			s.logger.Error("更新学期失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
		return s.toSemesterResponse(semester), nil
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	if err := txRepo.Semester.DeactivateAll(ctx, userID); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("失效旧活动学期失败", zap.Error(err))
		return nil, err
	}

	if err := txRepo.Semester.Update(ctx, semester); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.ErrActiveConflict
		}
		s.logger.Error("激活学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, pkgerrors.ErrActiveConflict
			}
			s.logger.Error("提交事务失败", zap.Error(err))
			return nil, err
		}
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── Archive ──────────────────────

// Archive 归档指定学期（必须显式指定 id，不做"任取一个"回退）
// 不改动 is_active；归档后该记录永久退出激活资格
func (s *semesterService) Archive(ctx context.Context, userID, id string) (*dto.SemesterResponse, error) {
	semester, err := s.repo.Semester.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSemesterNotFound
		}
		s.logger.Error("查询学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	semester.IsArchived = true

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("归档学期失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toSemesterResponse(semester), nil
}

// ────────────────────── CheckExpiration ──────────────────────

// CheckExpiration 按需过期检查：活动学期结束日期严格早于当前时刻时自动归档。
// 由客户端动作触发（无后台定时任务），过期时刻与下次检查之间的滞后是预期行为。
func (s *semesterService) CheckExpiration(ctx context.Context, userID string) (*dto.ExpirationCheckResponse, error) {
	semester, err := s.repo.Semester.GetActive(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.ExpirationCheckResponse{Expired: false}, nil
		}
		s.logger.Error("查询活动学期失败", zap.Error(err))
		return nil, err
	}

	if !semester.EndDate.Before(s.now()) {
		return &dto.ExpirationCheckResponse{Expired: false}, nil
	}

	semester.IsActive = false
	semester.IsArchived = true

	if err := s.repo.Semester.Update(ctx, semester); err != nil {
		s.logger.Error("归档过期学期失败", zap.String("id", semester.SemesterID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("学期已过期并自动归档",
		zap.String("semester_id", semester.SemesterID),
		zap.String("user_id", userID),
	)

	return &dto.ExpirationCheckResponse{
		Expired:  true,
		Semester: s.toSemesterResponse(semester),
	}, nil
}

// ── 内部辅助方法 ──

func (s *semesterService) toSemesterResponse(semester *model.Semester) *dto.SemesterResponse {
	holidays := []string(semester.Holidays)
	if holidays == nil {
		holidays = []string{}
	}
	return &dto.SemesterResponse{
		ID:         semester.SemesterID,
		Name:       semester.Name,
		StartDate:  semester.StartDate.Format("2006-01-02"),
		EndDate:    semester.EndDate.Format("2006-01-02"),
		Holidays:   holidays,
		IsActive:   semester.IsActive,
		IsArchived: semester.IsArchived,
		CreatedAt:  semester.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  semester.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *semesterService) toSemesterResponses(semesters []model.Semester) []dto.SemesterResponse {
	result := make([]dto.SemesterResponse, 0, len(semesters))
	for i := range semesters {
		result = append(result, *s.toSemesterResponse(&semesters[i]))
	}
	return result
}
