package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/amberly/schoolbook-backend/internal/config"
	"github.com/amberly/schoolbook-backend/internal/database"
	"github.com/amberly/schoolbook-backend/internal/handler"
	"github.com/amberly/schoolbook-backend/internal/repository"
	"github.com/amberly/schoolbook-backend/internal/router"
	"github.com/amberly/schoolbook-backend/internal/service"
	"github.com/amberly/schoolbook-backend/internal/validator"
)

// envelope mirrors the response wrapper for decoding in tests.
type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type tableSnapshot struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

func newTestRouter(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	validator.Setup()
	log := zerolog.Nop()

	tableRepo := repository.NewTableRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	handlers := &router.Handlers{
		Module:     handler.NewModuleHandler(),
		Record:     handler.NewRecordHandler(service.NewRecordService(tableRepo, log)),
		Attendance: handler.NewAttendanceHandler(service.NewAttendanceService(tableRepo, log)),
		Dashboard:  handler.NewDashboardHandler(service.NewDashboardService(dashboardRepo)),
	}

	cfg := &config.Config{GinMode: gin.TestMode}
	return router.SetupRouter(handlers, cfg), db
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

func listRecords(t *testing.T, r *gin.Engine, module, search string) tableSnapshot {
	t.Helper()

	path := fmt.Sprintf("/api/v1/modules/%s/records", module)
	if search != "" {
		path += "?search=" + search
	}
	w, env := doRequest(t, r, http.MethodGet, path, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list %s: status %d", module, w.Code)
	}

	var snapshot tableSnapshot
	if err := json.Unmarshal(env.Data["records"], &snapshot); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	return snapshot
}

func TestCreateAndListRecords(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodPost, "/api/v1/modules/students/records",
		`{"name":"Aisha","class":"5A","age":"10"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", w.Code, w.Body.String())
	}
	var msg string
	_ = json.Unmarshal(env.Data["message"], &msg)
	if msg != "Record Added Successfully!" {
		t.Errorf("message = %q", msg)
	}

	snapshot := listRecords(t, r, "students", "")
	if len(snapshot.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(snapshot.Rows))
	}
	if got := fmt.Sprint(snapshot.Rows[0][1]); got != "Aisha" {
		t.Errorf("name = %q, want Aisha", got)
	}
}

func TestSearchQueryFiltersRows(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/modules/teachers/records", `{"name":"Mrs. Rivera","subject":"Mathematics"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/modules/teachers/records", `{"name":"Mr. Osei","subject":"English"}`)

	if got := len(listRecords(t, r, "teachers", "mathem").Rows); got != 1 {
		t.Errorf("search mathem: %d rows, want 1", got)
	}
	if got := len(listRecords(t, r, "teachers", "nothing").Rows); got != 0 {
		t.Errorf("search nothing: %d rows, want 0", got)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/modules/students/records", `{"name":"Aisha","class":"5A","age":"10"}`)

	w, env := doRequest(t, r, http.MethodDelete, "/api/v1/modules/students/records/1", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed delete: status %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != "CONFIRMATION_REQUIRED" {
		t.Fatalf("unconfirmed delete error = %+v", env.Error)
	}
	if got := len(listRecords(t, r, "students", "").Rows); got != 1 {
		t.Fatalf("row deleted without confirmation")
	}

	w, _ = doRequest(t, r, http.MethodDelete, "/api/v1/modules/students/records/1?confirm=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirmed delete: status %d", w.Code)
	}
	if got := len(listRecords(t, r, "students", "").Rows); got != 0 {
		t.Fatalf("row not deleted after confirmation")
	}
}

func TestDeleteUnknownIDStillReportsSuccess(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/modules/students/records", `{"name":"Aisha","class":"5A","age":"10"}`)

	w, env := doRequest(t, r, http.MethodDelete, "/api/v1/modules/students/records/999?confirm=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete unknown id: status %d", w.Code)
	}
	var msg string
	_ = json.Unmarshal(env.Data["message"], &msg)
	if msg != "Record Deleted!" {
		t.Errorf("message = %q", msg)
	}
	if got := len(listRecords(t, r, "students", "").Rows); got != 1 {
		t.Fatalf("row count changed by unknown-id delete")
	}
}

func TestUpdateRecord(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/modules/students/records", `{"name":"Aisha","class":"5A","age":"10"}`)

	w, _ := doRequest(t, r, http.MethodPut, "/api/v1/modules/students/records/1",
		`{"name":"","class":"6B","age":""}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d", w.Code)
	}

	row := listRecords(t, r, "students", "").Rows[0]
	if got := fmt.Sprint(row[2]); got != "6B" {
		t.Errorf("class = %q, want 6B", got)
	}
	if got := fmt.Sprint(row[1]); got != "Aisha" {
		t.Errorf("name = %q, want Aisha (empty value must be skipped)", got)
	}

	// Unknown id still reports success.
	w, env := doRequest(t, r, http.MethodPut, "/api/v1/modules/students/records/50", `{"name":"Nobody"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update unknown id: status %d", w.Code)
	}
	var msg string
	_ = json.Unmarshal(env.Data["message"], &msg)
	if msg != "Record Updated!" {
		t.Errorf("message = %q", msg)
	}
}

func TestUnknownModuleIs404(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/modules/grades/records", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown module: status %d, want 404", w.Code)
	}
	if env.Error == nil || env.Error.Code != "UNKNOWN_MODULE" {
		t.Fatalf("error = %+v", env.Error)
	}
}

func TestInvalidIDIs400(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodDelete, "/api/v1/modules/students/records/abc?confirm=true", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id: status %d, want 400", w.Code)
	}
	if env.Error == nil || env.Error.Code != "INVALID_ID" {
		t.Fatalf("error = %+v", env.Error)
	}
}

func TestMarkAttendanceVisibleThroughGenericView(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/api/v1/attendance/mark",
		`{"student_id":"7","status":"Present"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("mark: status %d, body %s", w.Code, w.Body.String())
	}

	snapshot := listRecords(t, r, "attendance", "")
	if len(snapshot.Rows) != 1 {
		t.Fatalf("got %d attendance rows, want 1", len(snapshot.Rows))
	}
	row := snapshot.Rows[0]
	if got := fmt.Sprint(row[2]); got != time.Now().Format("2006-01-02") {
		t.Errorf("date = %q, want today", got)
	}
	if got := fmt.Sprint(row[3]); got != "Present" {
		t.Errorf("status = %q, want Present", got)
	}
}

func TestModulesListing(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doRequest(t, r, http.MethodGet, "/api/v1/modules", "")
	if w.Code != http.StatusOK {
		t.Fatalf("modules: status %d", w.Code)
	}

	var modules []struct {
		Name  string `json:"name"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data["modules"], &modules); err != nil {
		t.Fatalf("decode modules: %v", err)
	}
	if len(modules) != 8 {
		t.Fatalf("got %d modules, want 8", len(modules))
	}
	if modules[0].Name != "dashboard" {
		t.Errorf("first module = %q, want dashboard", modules[0].Name)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	doRequest(t, r, http.MethodPost, "/api/v1/modules/fees/records", `{"student_id":"1","amount":"500","paid":"1"}`)
	doRequest(t, r, http.MethodPost, "/api/v1/modules/fees/records", `{"student_id":"2","amount":"300","paid":"0"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard: status %d", w.Code)
	}

	var body struct {
		Data struct {
			TotalStudents int     `json:"total_students"`
			TotalFeesPaid float64 `json:"total_fees_paid"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if body.Data.TotalFeesPaid != 1 {
		t.Errorf("TotalFeesPaid = %v, want 1", body.Data.TotalFeesPaid)
	}
	if body.Data.TotalStudents != 0 {
		t.Errorf("TotalStudents = %v, want 0", body.Data.TotalStudents)
	}
}
