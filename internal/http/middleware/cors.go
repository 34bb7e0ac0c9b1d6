package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"go.uber.org/zap"
)

// requiredHeaders are always allowed so browser clients can authenticate
var requiredHeaders = []string{"Authorization", "Content-Type", "x-api-key", RequestIDHeader}

func isDevelopment(environment string) bool {
	return environment == "" || environment == "development" || environment == "local"
}

// CORS returns a CORS middleware configured from the application config.
// Without configured origins, development allows every origin and other
// environments deny cross-origin requests.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   mergeHeaders(cfg.AllowedHeaders, requiredHeaders),
		ExposedHeaders:   mergeHeaders(cfg.ExposedHeaders, []string{RequestIDHeader}),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(options.AllowedMethods) == 0 {
		options.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	}

	allowAny := func(r *http.Request, origin string) bool { return origin != "" }

	switch {
	case containsString(cfg.AllowedOrigins, "*"):
		if !isDevelopment(environment) {
			logger.Warn("CORS configured with wildcard origin outside development",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = allowAny
	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins", zap.Strings("origins", cfg.AllowedOrigins))
	case isDevelopment(environment):
		options.AllowOriginFunc = allowAny
		logger.Info("CORS allows all origins in development")
	default:
		// An empty AllowedOrigins list means "*" to go-chi/cors
		options.AllowOriginFunc = func(r *http.Request, origin string) bool { return false }
		logger.Warn("CORS has no allowed origins, cross-origin requests are denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

func mergeHeaders(configured, required []string) []string {
	out := append([]string(nil), configured...)
	for _, h := range required {
		if !containsString(out, h) {
			out = append(out, h)
		}
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
