package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/salaryreport"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SalaryReportHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GenerateAll(w http.ResponseWriter, r *http.Request)
	Regenerate(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Print(w http.ResponseWriter, r *http.Request)
}

type salaryReportHandlerImpl struct {
	reportService salaryreport.SalaryReportService
}

func NewSalaryReportHandler(reportService salaryreport.SalaryReportService) SalaryReportHandler {
	return &salaryReportHandlerImpl{reportService: reportService}
}

// Generate implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req salaryreport.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode generate report request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary report generated", result)
}

// GenerateAll implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var req salaryreport.BulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode bulk generate request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.GenerateAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk generation finished", result)
}

// Regenerate implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req salaryreport.GenerateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode regenerate report request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Regenerate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary report regenerated", result)
}

// List implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Search(r.Context(), salaryreport.SearchReportRequest{})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Search implements SalaryReportHandler. The filter arrives as a JSON body;
// an empty body means no filter.
func (h *salaryReportHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	var req salaryreport.SearchReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		slog.Error("Failed to decode report search request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reportService.Search(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		month = parsed
	}
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	result, err := h.reportService.GetSummary(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.reportService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary report deleted", nil)
}

// Print implements SalaryReportHandler.
func (h *salaryReportHandlerImpl) Print(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetForPrint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
