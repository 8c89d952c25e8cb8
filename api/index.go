package handler

import (
	"net/http"
	"sync"

	"todoapp/config"
	"todoapp/di"
	"todoapp/shared/logger"
	httpTransport "todoapp/transport/http"
)

var (
	server *httpTransport.HTTP
	once   sync.Once
)

// Handler is the function platform entry point. The service graph is built on
// the first invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)
		logger.SetLogLevel(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
