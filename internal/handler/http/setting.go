package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/setting"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetOvertimeDeduction(w http.ResponseWriter, r *http.Request)
	SaveOvertimeDeduction(w http.ResponseWriter, r *http.Request)
	GetWeekend(w http.ResponseWriter, r *http.Request)
	SaveWeekend(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

// Upsert implements SettingHandler.
func (h *settingHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req setting.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode setting request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting saved", result)
}

// Get implements SettingHandler.
func (h *settingHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetByKey(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements SettingHandler.
func (h *settingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements SettingHandler.
func (h *settingHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.settingService.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Setting deleted", nil)
}

// GetOvertimeDeduction implements SettingHandler.
func (h *settingHandlerImpl) GetOvertimeDeduction(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetOvertimeDeduction(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveOvertimeDeduction implements SettingHandler.
func (h *settingHandlerImpl) SaveOvertimeDeduction(w http.ResponseWriter, r *http.Request) {
	var req setting.OvertimeDeductionSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode setting request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.SaveOvertimeDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rates saved", result)
}

// GetWeekend implements SettingHandler.
func (h *settingHandlerImpl) GetWeekend(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetWeekend(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveWeekend implements SettingHandler.
func (h *settingHandlerImpl) SaveWeekend(w http.ResponseWriter, r *http.Request) {
	var req setting.WeekendSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode setting request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingService.SaveWeekend(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Weekend days saved", result)
}
