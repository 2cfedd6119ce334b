package http

import (
	"context"
	"math"
	"net/http"
	"time"

	"news-api/internal/handler/http/respond"
	"news-api/internal/infra/sysinfo"
	"news-api/internal/usecase/news"
)

// StatusResponse is the body of GET /api/status. Field names follow the
// admin dashboard's client types.
type StatusResponse struct {
	Overall   string          `json:"overall" example:"healthy"`
	Services  []ServiceStatus `json:"services"`
	Metrics   ResourceMetrics `json:"metrics"`
	Runtime   RuntimeMetrics  `json:"runtime"`
	Timestamp string          `json:"timestamp" example:"2025-01-15T09:30:00Z"`
}

// ServiceStatus is one row of the services table. Uptime is in seconds.
type ServiceStatus struct {
	Name      string `json:"name" example:"opensearch"`
	Status    string `json:"status" example:"healthy"`
	Uptime    int64  `json:"uptime" example:"3600"`
	LastCheck string `json:"lastCheck" example:"2025-01-15T09:30:00Z"`
	Message   string `json:"message,omitempty"`
}

// ResourceMetrics groups host resource usage.
type ResourceMetrics struct {
	CPU    CPUMetrics   `json:"cpu"`
	Memory UsageMetrics `json:"memory"`
	Disk   UsageMetrics `json:"disk"`
}

// CPUMetrics reports load as a percentage of the available cores.
type CPUMetrics struct {
	Usage float64 `json:"usage" example:"12.5"`
	Cores int     `json:"cores" example:"4"`
}

// UsageMetrics is a used/total byte pair with its percentage.
type UsageMetrics struct {
	Used       uint64  `json:"used"`
	Total      uint64  `json:"total"`
	Percentage float64 `json:"percentage" example:"42.1"`
}

// RuntimeMetrics describes the Go process.
type RuntimeMetrics struct {
	Goroutines int    `json:"goroutines"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	Sys        uint64 `json:"sys"`
	NumGC      uint32 `json:"numGC"`
}

// StatusHandler serves the operator overview.
type StatusHandler struct {
	Reporter StatusReporter
}

// ServeHTTP godoc
// @Summary      System status
// @Description  Per-service health with uptimes and host resource usage
// @Tags         health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /api/status [get]
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, newStatusResponse(h.Reporter.SystemStatus(ctx)))
}

func newStatusResponse(s news.SystemStatus) StatusResponse {
	services := make([]ServiceStatus, 0, len(s.Services))
	for _, svc := range s.Services {
		services = append(services, ServiceStatus{
			Name:      svc.Name,
			Status:    svc.Status,
			Uptime:    int64(svc.Uptime / time.Second),
			LastCheck: svc.LastCheck.Format(time.RFC3339),
			Message:   svc.Message,
		})
	}
	return StatusResponse{
		Overall:  s.Overall,
		Services: services,
		Metrics: ResourceMetrics{
			CPU:    CPUMetrics{Usage: round1(s.CPUUsage), Cores: s.CPUCores},
			Memory: usage(s.Memory),
			Disk:   usage(s.Disk),
		},
		Runtime: RuntimeMetrics{
			Goroutines: s.Runtime.Goroutines,
			HeapAlloc:  s.Runtime.HeapAlloc,
			Sys:        s.Runtime.Sys,
			NumGC:      s.Runtime.NumGC,
		},
		Timestamp: s.Timestamp.Format(time.RFC3339),
	}
}

func usage(u sysinfo.Usage) UsageMetrics {
	return UsageMetrics{Used: u.Used, Total: u.Total, Percentage: round1(u.Percentage())}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
