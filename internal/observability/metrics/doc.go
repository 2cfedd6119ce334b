// Package metrics owns the Prometheus collectors of the news API. Everything
// registers with the default registry under the "newsapi" namespace and is
// served by promhttp on /metrics.
package metrics
