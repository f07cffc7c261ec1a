package middleware

import (
	"encoding/json"
	"net/http"

	dashboardv1 "github.com/you-humble/stock-dashboard/pkg/api/dashboard/v1"
)

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dashboardv1.ErrorResponse{Code: status, Message: message})
}
