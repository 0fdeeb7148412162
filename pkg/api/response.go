package api

import (
	"encoding/json"
	"net/http"
)

// 成功直接回資料，失敗回 {message}
type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func SuccessJSON(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

func CreatedJSON(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, data)
}

func ErrorJSON(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

func MessageJSON(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, map[string]string{"message": message})
}
