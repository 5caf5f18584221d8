package handler

import (
	"dockhub/config"
	"dockhub/di"
	"dockhub/shared/logger"
	"net/http"
	"sync"

	_ "dockhub/docs"
)

var (
	handler     http.Handler
	handlerOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	handlerOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		handler = di.InitializeService().Handler()
	})

	handler.ServeHTTP(w, r)
}
