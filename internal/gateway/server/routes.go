package server

import (
	"net/http"

	"querylens/internal/gateway/handler"
	"querylens/internal/gateway/middleware"
)

func NewMux(clusterHandler *handler.Service) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/api/clusters/generate", clusterHandler.HandleGenerateClusters)
	api.HandleFunc("/api/clusters/accept", clusterHandler.HandleAcceptClusters)

	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.RequireUser(api))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return middleware.CORS(mux)
}
