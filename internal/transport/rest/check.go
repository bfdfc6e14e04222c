package rest

import "net/http"

type checkResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
}

// Check handles GET /api/check, a connectivity test that touches no dependency.
func Check(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, checkResponse{Message: "API connectivity test passed", Status: true})
}
