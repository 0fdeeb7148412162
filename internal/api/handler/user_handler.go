package handler

import (
	"encoding/json"
	"net/http"

	"github.com/RoyceAzure/lab/bookstore/internal/api/dto"
	"github.com/RoyceAzure/lab/bookstore/internal/domain/model"
	"github.com/RoyceAzure/lab/bookstore/internal/service"
	"github.com/RoyceAzure/lab/bookstore/internal/util"
	"github.com/RoyceAzure/lab/bookstore/pkg/api"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService service.IUserService
}

func NewUserHandler(userService service.IUserService) *UserHandler {
	if userService == nil {
		panic("userService cannot be nil")
	}
	return &UserHandler{
		userService: userService,
	}
}

// GET /users (admin)
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, users)
}

// GET /users/{id}
// 自己或管理員
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())
	userID := chi.URLParam(r, "id")

	if userID != payload.UserID.String() && !payload.IsAdmin() {
		api.ErrorJSON(w, http.StatusForbidden, "not authorized to access this user")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user)
}

// PUT /users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	payload := util.GetUserPayloadFromContext(r.Context())
	userID := chi.URLParam(r, "id")

	if userID != payload.UserID.String() && !payload.IsAdmin() {
		api.ErrorJSON(w, http.StatusForbidden, "not authorized to access this user")
		return
	}

	var updateDTO dto.UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&updateDTO); err != nil {
		api.ErrorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, &model.User{
		UserName:    updateDTO.UserName,
		UserEmail:   updateDTO.UserEmail,
		UserPhone:   updateDTO.UserPhone,
		UserAddress: updateDTO.UserAddress,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	api.SuccessJSON(w, user)
}

// DELETE /users/{id} (admin)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	api.MessageJSON(w, "user removed")
}
