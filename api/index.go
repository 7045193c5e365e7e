package handler

import (
	"net/http"

	"phoenix/config"
	"phoenix/di"
	"phoenix/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler, err := di.InitializeService()
	if err != nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)

		return
	}

	handler.ServeHTTP(w, r)
}
