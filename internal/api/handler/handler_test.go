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

	"github.com/gin-gonic/gin"

	"github.com/L52103/appEscritorioControl/internal/dto"
	"github.com/L52103/appEscritorioControl/internal/service"
	"github.com/L52103/appEscritorioControl/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	loginResult   *dto.TokenPairResponse
	loginErr      error
	refreshResult *dto.TokenPairResponse
	refreshErr    error
	logoutErr     error
	meResult      *dto.WorkerResponse
	meErr         error
}

func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Refresh(_ context.Context, _ *dto.RefreshTokenRequest) (*dto.TokenPairResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string) error {
	return m.logoutErr
}
func (m *mockAuthService) Me(_ context.Context, _ int64) (*dto.WorkerResponse, error) {
	return m.meResult, m.meErr
}

// ── Mock AttendanceService ──

type mockAttendanceService struct {
	checkInResult  *dto.TransitionResponse
	checkInErr     error
	checkOutResult *dto.TransitionResponse
	checkOutErr    error
	attachResult   *dto.TransitionResponse
	attachErr      error
	processResult  *dto.AttendanceResponse
	processErr     error
	listResult     []dto.AttendanceResponse
	listErr        error
}

func (m *mockAttendanceService) CheckIn(_ context.Context, _ *dto.CheckInRequest) (*dto.TransitionResponse, error) {
	return m.checkInResult, m.checkInErr
}
func (m *mockAttendanceService) CheckOut(_ context.Context, _ *dto.CheckOutRequest) (*dto.TransitionResponse, error) {
	return m.checkOutResult, m.checkOutErr
}
func (m *mockAttendanceService) AttachMessage(_ context.Context, _ *dto.AttachMessageRequest) (*dto.TransitionResponse, error) {
	return m.attachResult, m.attachErr
}
func (m *mockAttendanceService) Process(_ context.Context, _ int64) (*dto.AttendanceResponse, error) {
	return m.processResult, m.processErr
}
func (m *mockAttendanceService) List(_ context.Context) ([]dto.AttendanceResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock PayrollService ──

type mockPayrollService struct {
	listResult   []dto.PayrollRowResponse
	listErr      error
	updateResult *dto.PayrollRowResponse
	updateErr    error
	recalcCount  int
	recalcErr    error
}

func (m *mockPayrollService) ListMonth(_ context.Context, _ string) ([]dto.PayrollRowResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockPayrollService) UpdateRate(_ context.Context, _ int64, _ *dto.UpdateHourlyRateRequest) (*dto.PayrollRowResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockPayrollService) RecalculateAll(_ context.Context) (int, error) {
	return m.recalcCount, m.recalcErr
}

// ── Mock ReportService ──

type mockReportService struct {
	rows []dto.MonthlyAttendanceResponse
	err  error
}

func (m *mockReportService) MonthlyAttendance(_ context.Context) ([]dto.MonthlyAttendanceResponse, error) {
	return m.rows, m.err
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	ics      []byte
	filename string
	err      error
}

func (m *mockExportService) ExportAttendance(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportMonthlyReport(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportShiftCalendar(_ context.Context, _ int64) ([]byte, string, error) {
	return m.ics, m.filename, m.err
}

// ── Mock PredictionService ──

type mockPredictionService struct {
	result *dto.AbsencePredictionResponse
	err    error
}

func (m *mockPredictionService) PredictNextAbsence(_ context.Context, _ int64) (*dto.AbsencePredictionResponse, error) {
	return m.result, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func doRequest(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func transition(record dto.AttendanceResponse, created bool) *dto.TransitionResponse {
	return &dto.TransitionResponse{Record: &record, Created: created}
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenPairResponse{
			AccessToken:  "token-acceso",
			RefreshToken: "token-refresco",
		},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", bytes.NewReader([]byte("json inválido")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	r := gin.New()
	r.POST("/auth/login", h.Login)
	w := doRequest(r, "POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "ana@example.com",
		Password: "incorrecta",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{refreshErr: service.ErrInvalidToken})

	r := gin.New()
	r.POST("/auth/refresh", h.Refresh)
	w := doRequest(r, "POST", "/auth/refresh", jsonBody(dto.RefreshTokenRequest{
		RefreshToken: "caducado",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	r := gin.New()
	r.GET("/auth/me", h.Me)
	w := doRequest(r, "GET", "/auth/me", nil)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	mock := &mockAuthService{
		meResult: &dto.WorkerResponse{ID: 1, FirstName: "Ana"},
	}
	h := NewAuthHandler(mock)

	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set("worker_id", int64(1))
		c.Set("is_admin", false)
		h.Me(c)
	})
	w := doRequest(r, "GET", "/auth/me", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AttendanceHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAttendanceHandler_CheckIn_Created(t *testing.T) {
	mock := &mockAttendanceService{
		checkInResult: transition(dto.AttendanceResponse{ID: 1, WorkerID: 1}, true),
	}
	h := NewAttendanceHandler(mock)

	workerID := int64(1)
	r := gin.New()
	r.POST("/attendance/check-in", h.CheckIn)
	w := doRequest(r, "POST", "/attendance/check-in", jsonBody(dto.CheckInRequest{
		IdentityRequest: dto.IdentityRequest{WorkerID: &workerID},
	}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestAttendanceHandler_CheckIn_AbsorbedReturns200(t *testing.T) {
	mock := &mockAttendanceService{
		checkInResult: transition(dto.AttendanceResponse{ID: 1, WorkerID: 1}, false),
	}
	h := NewAttendanceHandler(mock)

	r := gin.New()
	r.POST("/attendance/check-in", h.CheckIn)
	w := doRequest(r, "POST", "/attendance/check-in", jsonBody(dto.CheckInRequest{
		IdentityRequest: dto.IdentityRequest{Email: "ana@example.com"},
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAttendanceHandler_CheckIn_BadJSON(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	r := gin.New()
	r.POST("/attendance/check-in", h.CheckIn)
	w := doRequest(r, "POST", "/attendance/check-in", bytes.NewReader([]byte("{")))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAttendanceHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"MissingIdentity", service.ErrMissingIdentity, 400, 15001},
		{"EmptyMessage", service.ErrEmptyMessage, 400, 15002},
		{"WorkerNotFound", service.ErrWorkerNotFound, 404, 12001},
		{"NoRecordToday", service.ErrNoRecordToday, 404, 15003},
		{"RecordNotFound", service.ErrRecordNotFound, 404, 15004},
		{"EntryAlreadyMarked", service.ErrEntryAlreadyMarked, 409, 15005},
		{"ExitWithoutEntry", service.ErrExitWithoutEntry, 409, 15006},
		{"ExitAlreadyMarked", service.ErrExitAlreadyMarked, 409, 15007},
		{"RecordIsAttendance", service.ErrRecordIsAttendance, 409, 15008},
		{"AlreadyProcessed", service.ErrAlreadyProcessed, 409, 15009},
		{"InternalError", errors.New("falla desconocida"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockAttendanceService{checkInErr: tt.err}
			h := NewAttendanceHandler(mock)

			r := gin.New()
			r.POST("/attendance/check-in", h.CheckIn)
			w := doRequest(r, "POST", "/attendance/check-in", jsonBody(dto.CheckInRequest{
				IdentityRequest: dto.IdentityRequest{Email: "ana@example.com"},
			}))

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

func TestAttendanceHandler_CheckOut_NoRecordToday(t *testing.T) {
	mock := &mockAttendanceService{checkOutErr: service.ErrNoRecordToday}
	h := NewAttendanceHandler(mock)

	r := gin.New()
	r.POST("/attendance/check-out", h.CheckOut)
	w := doRequest(r, "POST", "/attendance/check-out", jsonBody(dto.CheckOutRequest{
		IdentityRequest: dto.IdentityRequest{RUT: "11.111.111-1"},
	}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 15003 {
		t.Errorf("expected code 15003, got %d", resp.Code)
	}
}

func TestAttendanceHandler_AttachMessage_MissingMessage(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	r := gin.New()
	r.POST("/attendance/message", h.AttachMessage)
	// message is required by the binding, so this never reaches the service
	w := doRequest(r, "POST", "/attendance/message", jsonBody(map[string]string{
		"email": "ana@example.com",
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAttendanceHandler_Process_Success(t *testing.T) {
	category := "medical"
	mock := &mockAttendanceService{
		processResult: &dto.AttendanceResponse{ID: 7, Processed: true, Category: &category},
	}
	h := NewAttendanceHandler(mock)

	r := gin.New()
	r.POST("/attendance/:id/process", h.Process)
	w := doRequest(r, "POST", "/attendance/7/process", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAttendanceHandler_Process_BadID(t *testing.T) {
	h := NewAttendanceHandler(&mockAttendanceService{})

	r := gin.New()
	r.POST("/attendance/:id/process", h.Process)
	w := doRequest(r, "POST", "/attendance/abc/process", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAttendanceHandler_List_Success(t *testing.T) {
	mock := &mockAttendanceService{
		listResult: []dto.AttendanceResponse{{ID: 1}, {ID: 2}},
	}
	h := NewAttendanceHandler(mock)

	r := gin.New()
	r.GET("/attendance", h.List)
	w := doRequest(r, "GET", "/attendance", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PayrollHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPayrollHandler_List_Success(t *testing.T) {
	rate := 5000.0
	mock := &mockPayrollService{
		listResult: []dto.PayrollRowResponse{
			{WorkerID: 1, WorkerName: "Ana Soto", MonthHours: 160, HourlyRate: &rate},
		},
	}
	h := NewPayrollHandler(mock)

	r := gin.New()
	r.GET("/payroll", h.List)
	w := doRequest(r, "GET", "/payroll?month=2024-03", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPayrollHandler_UpdateRate_Success(t *testing.T) {
	rate := 4500.0
	mock := &mockPayrollService{
		updateResult: &dto.PayrollRowResponse{WorkerID: 1, HourlyRate: &rate},
	}
	h := NewPayrollHandler(mock)

	r := gin.New()
	r.PUT("/payroll/:id/rate", h.UpdateRate)
	w := doRequest(r, "PUT", "/payroll/1/rate", jsonBody(map[string]float64{
		"hourly_rate": 4500,
	}))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPayrollHandler_Recalculate_Success(t *testing.T) {
	h := NewPayrollHandler(&mockPayrollService{recalcCount: 3})

	r := gin.New()
	r.POST("/payroll/recalculate", h.Recalculate)
	w := doRequest(r, "POST", "/payroll/recalculate", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPayrollHandler_UpdateRate_NegativeRate(t *testing.T) {
	h := NewPayrollHandler(&mockPayrollService{})

	r := gin.New()
	r.PUT("/payroll/:id/rate", h.UpdateRate)
	w := doRequest(r, "PUT", "/payroll/1/rate", jsonBody(map[string]float64{
		"hourly_rate": -10,
	}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPayrollHandler_UpdateRate_UnknownWorker(t *testing.T) {
	h := NewPayrollHandler(&mockPayrollService{updateErr: service.ErrWorkerNotFound})

	r := gin.New()
	r.PUT("/payroll/:id/rate", h.UpdateRate)
	w := doRequest(r, "PUT", "/payroll/99/rate", jsonBody(map[string]float64{
		"hourly_rate": 4500,
	}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12001 {
		t.Errorf("expected code 12001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ReportHandler Tests
// ═══════════════════════════════════════════════════════════

func newReportHandlerForTest(report *mockReportService, export *mockExportService, prediction *mockPredictionService) *ReportHandler {
	if report == nil {
		report = &mockReportService{}
	}
	if export == nil {
		export = &mockExportService{}
	}
	if prediction == nil {
		prediction = &mockPredictionService{}
	}
	return NewReportHandler(report, export, prediction)
}

func TestReportHandler_MonthlyAttendance_Success(t *testing.T) {
	report := &mockReportService{
		rows: []dto.MonthlyAttendanceResponse{
			{Month: "2024-03", WorkerID: 1, WorkerName: "Ana Soto", DaysWorked: 20},
		},
	}
	h := newReportHandlerForTest(report, nil, nil)

	r := gin.New()
	r.GET("/reports/monthly-attendance", h.MonthlyAttendance)
	w := doRequest(r, "GET", "/reports/monthly-attendance", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestReportHandler_ExportAttendance_Success(t *testing.T) {
	export := &mockExportService{
		buf:      bytes.NewBufferString("contenido excel"),
		filename: "asistencias_2024-03-15.xlsx",
	}
	h := newReportHandlerForTest(nil, export, nil)

	r := gin.New()
	r.GET("/reports/attendance/export", h.ExportAttendance)
	w := doRequest(r, "GET", "/reports/attendance/export", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != xlsxContentType {
		t.Errorf("unexpected content type: %s", ct)
	}
	if w.Header().Get("Content-Disposition") == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestReportHandler_ExportAttendance_NoRecords(t *testing.T) {
	export := &mockExportService{err: service.ErrExportNoRecords}
	h := newReportHandlerForTest(nil, export, nil)

	r := gin.New()
	r.GET("/reports/attendance/export", h.ExportAttendance)
	w := doRequest(r, "GET", "/reports/attendance/export", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17002 {
		t.Errorf("expected code 17002, got %d", resp.Code)
	}
}

func TestReportHandler_ExportShiftCalendar_Success(t *testing.T) {
	export := &mockExportService{
		ics:      []byte("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		filename: "turnos_ana.ics",
	}
	h := newReportHandlerForTest(nil, export, nil)

	r := gin.New()
	r.GET("/reports/shift-calendar/:id", h.ExportShiftCalendar)
	w := doRequest(r, "GET", "/reports/shift-calendar/1", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("unexpected content type: %s", ct)
	}
}

func TestReportHandler_ExportShiftCalendar_NoAssignments(t *testing.T) {
	export := &mockExportService{err: service.ErrExportNoAssignments}
	h := newReportHandlerForTest(nil, export, nil)

	r := gin.New()
	r.GET("/reports/shift-calendar/:id", h.ExportShiftCalendar)
	w := doRequest(r, "GET", "/reports/shift-calendar/1", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17003 {
		t.Errorf("expected code 17003, got %d", resp.Code)
	}
}

func TestReportHandler_PredictAbsence_Success(t *testing.T) {
	prediction := &mockPredictionService{
		result: &dto.AbsencePredictionResponse{
			WorkerID:          1,
			AbsenceCount:      3,
			MeanGapDays:       10,
			MeanDurationDays:  2,
			PredictedStart:    "2024-02-09",
			PredictedEnd:      "2024-02-10",
			PredictedDuration: 2,
		},
	}
	h := newReportHandlerForTest(nil, nil, prediction)

	r := gin.New()
	r.GET("/reports/predict-absence/:id", h.PredictAbsence)
	w := doRequest(r, "GET", "/reports/predict-absence/1", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestReportHandler_PredictAbsence_NotEnoughHistory(t *testing.T) {
	prediction := &mockPredictionService{err: service.ErrNotEnoughHistory}
	h := newReportHandlerForTest(nil, nil, prediction)

	r := gin.New()
	r.GET("/reports/predict-absence/:id", h.PredictAbsence)
	w := doRequest(r, "GET", "/reports/predict-absence/1", nil)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17001 {
		t.Errorf("expected code 17001, got %d", resp.Code)
	}
}
