package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/attendance"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceService struct {
	attendance.AttendanceService

	exportErr  error
	exportBody string

	statsCalls int
}

func (f *fakeAttendanceService) ExportExcel(_ context.Context, _ attendance.AttendanceFilter, w io.Writer) error {
	if f.exportErr != nil {
		return f.exportErr
	}
	_, err := io.WriteString(w, f.exportBody)
	return err
}

func (f *fakeAttendanceService) GetStatistics(_ context.Context, _ string, _, _ int) (attendance.StatisticsResponse, error) {
	f.statsCalls++
	return attendance.StatisticsResponse{}, nil
}

func newAttendanceTestRouter(svc *fakeAttendanceService) *chi.Mux {
	h := NewAttendanceHandler(svc)
	r := chi.NewRouter()
	r.Post("/attendance/export", h.Export)
	r.Get("/attendance/statistics/{employeeId}", h.Statistics)
	return r
}

func TestExportFailureReturnsErrorEnvelope(t *testing.T) {
	svc := &fakeAttendanceService{exportErr: errors.New("query failed")}
	router := newAttendanceTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attendance/export", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestExportSuccessStreamsWorkbook(t *testing.T) {
	svc := &fakeAttendanceService{exportBody: "workbook-bytes"}
	router := newAttendanceTestRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/attendance/export",
		strings.NewReader(`{"employeeName":"Ahmed"}`))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance-")
	assert.Equal(t, "workbook-bytes", rec.Body.String())
}

func TestStatisticsRejectsNonPositiveYear(t *testing.T) {
	svc := &fakeAttendanceService{}
	router := newAttendanceTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/attendance/statistics/emp-1?month=3&year=0", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.statsCalls)
}

func TestStatisticsRejectsMonthOutOfRange(t *testing.T) {
	svc := &fakeAttendanceService{}
	router := newAttendanceTestRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/attendance/statistics/emp-1?month=13&year=2026", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.statsCalls)
}
