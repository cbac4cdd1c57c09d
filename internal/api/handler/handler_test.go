package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/dto"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/model"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/internal/service"
	pkgerrors "github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/errors"
	"github.com/HeatsinkDip/planio-academic-suite-sub001/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult *dto.UserResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	refreshResult  *dto.TokenResponse
	refreshErr     error
	logoutErr      error
	meResult       *dto.UserResponse
	meErr          error
	changePassErr  error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.meResult, m.meErr
}
func (m *mockAuthService) ChangePassword(_ context.Context, _ string, _ *dto.ChangePasswordRequest) error {
	return m.changePassErr
}

// ── Mock SemesterService ──

type mockSemesterService struct {
	activeResult   *dto.SemesterResponse
	activeErr      error
	getResult      *dto.SemesterResponse
	getErr         error
	listResult     []dto.SemesterResponse
	listErr        error
	archivedResult []dto.SemesterResponse
	archivedErr    error
	historyResult  []dto.SemesterResponse
	historyErr     error
	createResult   *dto.SemesterResponse
	createErr      error
	updateResult   *dto.SemesterResponse
	updateErr      error
	archiveResult  *dto.SemesterResponse
	archiveErr     error
	checkResult    *dto.ExpirationCheckResponse
	checkErr       error
}

func (m *mockSemesterService) GetActive(_ context.Context, _ string) (*dto.SemesterResponse, error) {
	return m.activeResult, m.activeErr
}
func (m *mockSemesterService) GetByID(_ context.Context, _, _ string) (*dto.SemesterResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockSemesterService) ListAll(_ context.Context, _ string) ([]dto.SemesterResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockSemesterService) ListArchived(_ context.Context, _ string) ([]dto.SemesterResponse, error) {
	return m.archivedResult, m.archivedErr
}
func (m *mockSemesterService) History(_ context.Context, _ string) ([]dto.SemesterResponse, error) {
	return m.historyResult, m.historyErr
}
func (m *mockSemesterService) Create(_ context.Context, _ string, _ *dto.CreateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockSemesterService) Update(_ context.Context, _, _ string, _ *dto.UpdateSemesterRequest) (*dto.SemesterResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockSemesterService) Archive(_ context.Context, _, _ string) (*dto.SemesterResponse, error) {
	return m.archiveResult, m.archiveErr
}
func (m *mockSemesterService) CheckExpiration(_ context.Context, _ string) (*dto.ExpirationCheckResponse, error) {
	return m.checkResult, m.checkErr
}

// ── Mock SemesterEventService ──

type mockSemesterEventService struct {
	createResult *model.SemesterEvent
	createErr    error
	listResult   []model.SemesterEvent
	listErr      error
	deleteErr    error
}

func (m *mockSemesterEventService) Create(_ context.Context, _ string, _ *dto.CreateSemesterEventRequest) (*model.SemesterEvent, error) {
	return m.createResult, m.createErr
}
func (m *mockSemesterEventService) List(_ context.Context, _, _ string) ([]model.SemesterEvent, error) {
	return m.listResult, m.listErr
}
func (m *mockSemesterEventService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService / CalendarService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportTransactions(_ context.Context, _ string, _, _ time.Time) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

type mockCalendarService struct {
	content string
	err     error
}

func (m *mockCalendarService) SemesterCalendar(_ context.Context, _, _ string) (string, error) {
	return m.content, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("token_jti", "test-jti")
	c.Set("token_exp", time.Now().Add(15*time.Minute))
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.UserResponse{ID: "user-1", Email: "stu@example.com"},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Name:     "测试用户",
		Email:    "stu@example.com",
		Password: "pass123456",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrEmailTaken}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Name:     "测试用户",
		Email:    "dup@example.com",
		Password: "pass123456",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "stu@example.com",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Logout_Success(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.Me) // 未注入 user_id
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_ChangePassword_WrongOld(t *testing.T) {
	mock := &mockAuthService{changePassErr: service.ErrWrongOldPassword}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/auth/password", jsonBody(dto.ChangePasswordRequest{
		OldPassword: "wrong1234",
		NewPassword: "newpass123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/password", func(c *gin.Context) {
		setAuth(c)
		h.ChangePassword(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11005 {
		t.Errorf("expected error code 11005, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// SemesterHandler Tests
// ═══════════════════════════════════════════════════════════

func TestSemesterHandler_GetConfig_NoActiveIsNull(t *testing.T) {
	// 服务返回 (nil, nil)，响应应为 200 且 data 为 null
	mock := &mockSemesterService{}
	h := NewSemesterHandler(mock, &mockSemesterEventService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semester/config", nil)

	r := gin.New()
	r.GET("/semester/config", func(c *gin.Context) {
		setAuth(c)
		h.GetConfig(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Data != nil {
		t.Errorf("expected null data, got %v", resp.Data)
	}
}

func TestSemesterHandler_CreateConfig_Success(t *testing.T) {
	mock := &mockSemesterService{
		createResult: &dto.SemesterResponse{ID: "sem-1", IsActive: true},
	}
	h := NewSemesterHandler(mock, &mockSemesterEventService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semester/config", jsonBody(dto.CreateSemesterRequest{
		Name:      "2026秋季学期",
		StartDate: "2026-09-01",
		EndDate:   "2027-01-15",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/semester/config", func(c *gin.Context) {
		setAuth(c)
		h.CreateConfig(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestSemesterHandler_Archive_MissingID(t *testing.T) {
	h := NewSemesterHandler(&mockSemesterService{}, &mockSemesterEventService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semester/archive", jsonBody(map[string]string{}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/semester/archive", func(c *gin.Context) {
		setAuth(c)
		h.Archive(c)
	})
	r.ServeHTTP(w, req)

	// semester_id 必填，缺失应被参数校验拦截
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSemesterHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrSemesterNotFound, 404, 14001},
		{"DateInvalid", service.ErrSemesterDateInvalid, 400, 14002},
		{"Archived", service.ErrSemesterArchived, 400, 14003},
		{"ActiveConflict", pkgerrors.ErrActiveConflict, 409, 14004},
		{"NoActiveSemester", service.ErrNoActiveSemester, 400, 14005},
		{"EventNotFound", service.ErrSemesterEventNotFound, 404, 18001},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSemesterService{updateErr: tt.err}
			h := NewSemesterHandler(mock, &mockSemesterEventService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("PUT", "/semester/config/sem-1", jsonBody(dto.UpdateSemesterRequest{}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.PUT("/semester/config/:id", func(c *gin.Context) {
				setAuth(c)
				h.UpdateConfig(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

func TestSemesterHandler_CheckExpiration(t *testing.T) {
	mock := &mockSemesterService{
		checkResult: &dto.ExpirationCheckResponse{Expired: false},
	}
	h := NewSemesterHandler(mock, &mockSemesterEventService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/semester/check-expiration", nil)

	r := gin.New()
	r.POST("/semester/check-expiration", func(c *gin.Context) {
		setAuth(c)
		h.CheckExpiration(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_Transactions_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "收支明细_20260831.xlsx",
	}
	h := NewExportHandler(mock, &mockCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/transactions", nil)

	r := gin.New()
	r.GET("/export/transactions", func(c *gin.Context) {
		setAuth(c)
		h.ExportTransactions(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_Transactions_BadFromDate(t *testing.T) {
	h := NewExportHandler(&mockExportService{}, &mockCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/transactions?from=08-31-2026", nil)

	r := gin.New()
	r.GET("/export/transactions", func(c *gin.Context) {
		setAuth(c)
		h.ExportTransactions(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestExportHandler_Transactions_NoData(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoData}
	h := NewExportHandler(mock, &mockCalendarService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/transactions", nil)

	r := gin.New()
	r.GET("/export/transactions", func(c *gin.Context) {
		setAuth(c)
		h.ExportTransactions(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 28001 {
		t.Errorf("expected error code 28001, got %d", resp.Code)
	}
}

func TestExportHandler_SemesterCalendar_Success(t *testing.T) {
	mock := &mockCalendarService{content: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	h := NewExportHandler(&mockExportService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semester/calendar.ics", nil)

	r := gin.New()
	r.GET("/semester/calendar.ics", func(c *gin.Context) {
		setAuth(c)
		h.SemesterCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("VCALENDAR")) {
		t.Error("expected calendar body")
	}
}

func TestExportHandler_SemesterCalendar_NoActiveSemester(t *testing.T) {
	mock := &mockCalendarService{err: service.ErrNoActiveSemester}
	h := NewExportHandler(&mockExportService{}, mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/semester/calendar.ics", nil)

	r := gin.New()
	r.GET("/semester/calendar.ics", func(c *gin.Context) {
		setAuth(c)
		h.SemesterCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
