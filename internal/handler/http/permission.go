package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/permission"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PermissionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	SoftDelete(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{permissionService: permissionService}
}

// Create implements PermissionHandler.
func (h *permissionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req permission.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode permission request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.permissionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission created", result)
}

// Get implements PermissionHandler.
func (h *permissionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PermissionHandler. ?resource= narrows to one resource.
func (h *permissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.permissionService.List(r.Context(), r.URL.Query().Get("resource"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements PermissionHandler.
func (h *permissionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req permission.UpdatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode permission request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.permissionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission updated", result)
}

// SoftDelete implements PermissionHandler.
func (h *permissionHandlerImpl) SoftDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.permissionService.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission deleted", nil)
}

// Delete implements PermissionHandler.
func (h *permissionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.permissionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission deleted", nil)
}
