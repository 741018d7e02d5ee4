package httpapi

import (
	"net/http"
	"time"

	"menu-order/pkg/logger"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

type CORSConfig struct {
	AllowedOrigins []string
}

func NewRouter(handler *Handler, corsConfig CORSConfig) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	// Cookies only travel to origins that were named explicitly.
	origins := corsConfig.AllowedOrigins
	credentials := len(origins) > 0
	if !credentials {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", SessionHeader, "X-Request-ID"},
		ExposedHeaders:   []string{SessionHeader, "X-Request-ID"},
		AllowCredentials: credentials,
	})

	if handler.Log == nil {
		handler.Log = logger.Discard()
	}
	return handler.Log.HTTPMiddleware(c.Handler(r))
}

func StartServer(addr string, handler http.Handler, log *logger.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Info("order service starting", "addr", addr)
	return server.ListenAndServe()
}
