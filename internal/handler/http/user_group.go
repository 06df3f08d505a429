package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MohamedSalah50/hr-backend-go/internal/domain/usergroup"
	"github.com/MohamedSalah50/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserGroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddUsers(w http.ResponseWriter, r *http.Request)
	RemoveUsers(w http.ResponseWriter, r *http.Request)
	AddPermissions(w http.ResponseWriter, r *http.Request)
	RemovePermissions(w http.ResponseWriter, r *http.Request)
}

type userGroupHandlerImpl struct {
	userGroupService usergroup.UserGroupService
}

func NewUserGroupHandler(userGroupService usergroup.UserGroupService) UserGroupHandler {
	return &userGroupHandlerImpl{userGroupService: userGroupService}
}

// Create implements UserGroupHandler.
func (h *userGroupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req usergroup.CreateUserGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode user group request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userGroupService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "User group created", result)
}

// Get implements UserGroupHandler.
func (h *userGroupHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.userGroupService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements UserGroupHandler.
func (h *userGroupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.userGroupService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements UserGroupHandler.
func (h *userGroupHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req usergroup.UpdateUserGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode user group request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.userGroupService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User group updated", result)
}

// Delete implements UserGroupHandler.
func (h *userGroupHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.userGroupService.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User group deleted", nil)
}

// AddUsers implements UserGroupHandler.
func (h *userGroupHandlerImpl) AddUsers(w http.ResponseWriter, r *http.Request) {
	var req usergroup.GroupUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group users request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userGroupService.AddUsers(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Users added to group", result)
}

// RemoveUsers implements UserGroupHandler.
func (h *userGroupHandlerImpl) RemoveUsers(w http.ResponseWriter, r *http.Request) {
	var req usergroup.GroupUsersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group users request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userGroupService.RemoveUsers(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Users removed from group", result)
}

// AddPermissions implements UserGroupHandler.
func (h *userGroupHandlerImpl) AddPermissions(w http.ResponseWriter, r *http.Request) {
	var req usergroup.GroupPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group permissions request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userGroupService.AddPermissions(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permissions added to group", result)
}

// RemovePermissions implements UserGroupHandler.
func (h *userGroupHandlerImpl) RemovePermissions(w http.ResponseWriter, r *http.Request) {
	var req usergroup.GroupPermissionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode group permissions request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userGroupService.RemovePermissions(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permissions removed from group", result)
}
