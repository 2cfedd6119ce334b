package middleware

import (
	"net/http"
	"strings"

	"news-api/pkg/security/csp"
)

// CSPConfig selects a policy per request path.
type CSPConfig struct {
	Enabled bool
	// DefaultPolicy applies when no PathPolicies prefix matches.
	DefaultPolicy csp.Policy
	// PathPolicies maps a path prefix to its policy; the longest prefix wins.
	PathPolicies map[string]csp.Policy
	ReportOnly   bool
}

// DefaultCSPConfig locks down API responses and relaxes /swagger/ enough for
// the UI to load.
func DefaultCSPConfig(enabled, reportOnly bool) CSPConfig {
	return CSPConfig{
		Enabled:       enabled,
		DefaultPolicy: csp.APIPolicy(),
		PathPolicies: map[string]csp.Policy{
			"/swagger/": csp.SwaggerUIPolicy(),
		},
		ReportOnly: reportOnly,
	}
}

// SecurityHeaders sets the CSP header chosen by cfg and X-Content-Type-Options.
func SecurityHeaders(cfg CSPConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			if cfg.Enabled {
				policy := cfg.selectPolicy(r.URL.Path).ReportOnly(cfg.ReportOnly)
				if value := policy.String(); value != "" {
					w.Header().Set(policy.HeaderName(), value)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (c CSPConfig) selectPolicy(path string) csp.Policy {
	longest := ""
	matched := c.DefaultPolicy
	for prefix, policy := range c.PathPolicies {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(longest) {
			longest = prefix
			matched = policy
		}
	}
	return matched
}
