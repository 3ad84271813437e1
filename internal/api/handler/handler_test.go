package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/dto"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/model"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/service"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/internal/shift"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/jwt"
	"github.com/samuelfdezp-rgb/Cuadrante-2026/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock services ──

type mockAuthService struct {
	loginResult   *dto.TokenResponse
	loginErr      error
	refreshResult *dto.TokenResponse
	refreshErr    error
	logoutErr     error
	profileResult *dto.WorkerResponse
	profileErr    error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ *jwt.Claims) error { return m.logoutErr }
func (m *mockAuthService) RefreshToken(_ context.Context, _ *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) GetProfile(_ context.Context, _ string) (*dto.WorkerResponse, error) {
	return m.profileResult, m.profileErr
}

type mockRosterService struct {
	monthResult   *dto.MonthRosterResponse
	monthErr      error
	myResult      *dto.MyShiftsResponse
	myErr         error
	importResult  *dto.ImportResultResponse
	importErr     error
	workersResult []dto.WorkerResponse
	workersErr    error
}

func (m *mockRosterService) EffectiveRoster(_ context.Context, _ int) ([]shift.Entry, []shift.Warning, error) {
	return nil, nil, nil
}
func (m *mockRosterService) CalendarFor(_ context.Context, _ int) (shift.Calendar, error) {
	return shift.Calendar{}, nil
}
func (m *mockRosterService) MonthRoster(_ context.Context, _ int) (*dto.MonthRosterResponse, error) {
	return m.monthResult, m.monthErr
}
func (m *mockRosterService) MyShifts(_ context.Context, _ string, _ int) (*dto.MyShiftsResponse, error) {
	return m.myResult, m.myErr
}
func (m *mockRosterService) ImportCSV(_ context.Context, _ io.Reader) (*dto.ImportResultResponse, error) {
	return m.importResult, m.importErr
}
func (m *mockRosterService) ListWorkers(_ context.Context) ([]dto.WorkerResponse, error) {
	return m.workersResult, m.workersErr
}
func (m *mockRosterService) ListHolidays(_ context.Context, _ int) ([]dto.HolidayResponse, error) {
	return nil, nil
}
func (m *mockRosterService) AddHoliday(_ context.Context, _ *dto.HolidayRequest) (*dto.HolidayResponse, error) {
	return nil, nil
}
func (m *mockRosterService) DeleteHoliday(_ context.Context, _ string) error { return nil }
func (m *mockRosterService) AddManualHours(_ context.Context, _ *dto.ManualHoursRequest) (*dto.ManualHoursResponse, error) {
	return nil, nil
}
func (m *mockRosterService) ListManualHours(_ context.Context) ([]dto.ManualHoursResponse, error) {
	return nil, nil
}

type mockSummaryService struct {
	result *dto.SummaryResponse
	err    error
}

func (m *mockSummaryService) YearSummary(_ context.Context, _ string, _ int) (*dto.SummaryResponse, error) {
	return m.result, m.err
}

// ── helpers ──

func performRequest(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return resp
}

// authenticated simulates the JWT middleware having run.
func authenticated(nip, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("nip", nip)
		c.Set("role", role)
		c.Next()
	}
}

// ── auth handler ──

func TestAuthHandler_Login_OK(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{
		loginResult: &dto.TokenResponse{
			AccessToken:  "acc",
			RefreshToken: "ref",
			Worker:       dto.WorkerResponse{NIP: "001234", Role: model.RoleWorker},
		},
	})

	r := gin.New()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(dto.LoginRequest{NIP: "001234", Password: "x"})
	w := performRequest(r, http.MethodPost, "/login", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Code != 0 {
		t.Errorf("envelope code = %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	r := gin.New()
	r.POST("/login", h.Login)

	body, _ := json.Marshal(dto.LoginRequest{NIP: "001234", Password: "bad"})
	w := performRequest(r, http.MethodPost, "/login", body)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthHandler_Login_MissingBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/login", h.Login)

	w := performRequest(r, http.MethodPost, "/login", []byte(`{}`))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// ── roster handler ──

func TestRosterHandler_GetMonth_OK(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{
		monthResult: &dto.MonthRosterResponse{Year: 2026, Month: 1},
	})

	r := gin.New()
	r.GET("/roster", h.GetMonth)

	w := performRequest(r, http.MethodGet, "/roster?month=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRosterHandler_GetMonth_MissingMonth(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	r := gin.New()
	r.GET("/roster", h.GetMonth)

	w := performRequest(r, http.MethodGet, "/roster", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRosterHandler_GetMonth_InvalidMonth(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{monthErr: service.ErrInvalidMonth})

	r := gin.New()
	r.GET("/roster", h.GetMonth)

	w := performRequest(r, http.MethodGet, "/roster?month=13", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRosterHandler_GetMine_RequiresAuth(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{})

	r := gin.New()
	r.GET("/roster/me", h.GetMine)

	w := performRequest(r, http.MethodGet, "/roster/me?month=1", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without auth context", w.Code)
	}
}

func TestRosterHandler_Import_RawBody(t *testing.T) {
	h := NewRosterHandler(&mockRosterService{
		importResult: &dto.ImportResultResponse{Imported: 2},
	})

	r := gin.New()
	r.POST("/import", h.Import)

	csvBody := "fecha,nip,nombre,categoria,turno\n2026-01-05,1234,Ana,Agente,1"
	req := httptest.NewRequest(http.MethodPost, "/import", strings.NewReader(csvBody))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

// ── summary handler ──

func TestSummaryHandler_OwnSummary(t *testing.T) {
	h := NewSummaryHandler(&mockSummaryService{
		result: &dto.SummaryResponse{NIP: "001234", Year: 2026},
	})

	r := gin.New()
	r.GET("/summary", authenticated("001234", model.RoleWorker), h.Get)

	w := performRequest(r, http.MethodGet, "/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestSummaryHandler_ForbiddenForOtherWorker(t *testing.T) {
	h := NewSummaryHandler(&mockSummaryService{})

	r := gin.New()
	r.GET("/summary", authenticated("001234", model.RoleWorker), h.Get)

	w := performRequest(r, http.MethodGet, "/summary?nip=005678", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}

func TestSummaryHandler_AdminMayReadAnyone(t *testing.T) {
	h := NewSummaryHandler(&mockSummaryService{
		result: &dto.SummaryResponse{NIP: "005678", Year: 2026},
	})

	r := gin.New()
	r.GET("/summary", authenticated("001234", model.RoleAdmin), h.Get)

	w := performRequest(r, http.MethodGet, "/summary?nip=5678", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
}

func TestSummaryHandler_UnknownWorker(t *testing.T) {
	h := NewSummaryHandler(&mockSummaryService{err: service.ErrNoRosterForWorker})

	r := gin.New()
	r.GET("/summary", authenticated("001234", model.RoleAdmin), h.Get)

	w := performRequest(r, http.MethodGet, "/summary?nip=999999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
