package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

func NewRouter(api *API, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/categories", api.HandleCategories)
	mux.HandleFunc("/sessions", api.HandleCreateSession)
	mux.HandleFunc("/sessions/{session_id}", api.HandleSession)
	mux.HandleFunc("/sessions/{session_id}/answers", api.HandleAnswer)
	mux.HandleFunc("/sessions/{session_id}/next", api.HandleNext)

	return withRequestLogging(mux, logger)
}
