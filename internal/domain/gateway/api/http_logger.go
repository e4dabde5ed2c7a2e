package api

import (
	"city-weather/pkg/log"
)

// zapHTTPLogger adapts pkg/log to the pkg/http logging hook. Outbound request
// bodies are empty for this application, so only URLs and statuses are logged.
type zapHTTPLogger struct {
	provider string
}

func newHTTPLogger(provider string) *zapHTTPLogger {
	return &zapHTTPLogger{provider: provider}
}

func (l *zapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugw("outbound request", "provider", l.provider, "method", method, "url", url)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debugw("outbound response", "provider", l.provider, "method", method, "url", url,
		"status", httpStatus, "latency_ms", latency)
}

func (l *zapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnw("outbound call failed", "provider", l.provider, "method", method, "url", url,
		"status", httpStatus, "latency_ms", latency, "error", err)
}
