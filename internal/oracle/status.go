package oracle

import "net/http"

// mapStatus turns a provider HTTP status into the oracle error taxonomy.
func mapStatus(code int, err error) error {
	switch code {
	case http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	case http.StatusPaymentRequired:
		return &ErrQuotaExhausted{Err: err}
	}
	return &ErrUnavailable{Err: err}
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
