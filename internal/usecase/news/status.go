package news

import (
	"context"
	"log/slog"
	"time"

	"news-api/internal/infra/sysinfo"
)

// ServiceStatus is the health of one component.
type ServiceStatus struct {
	Name      string
	Status    string
	Uptime    time.Duration
	LastCheck time.Time
	Message   string
}

// SystemStatus is the operator overview of the process and its dependencies.
type SystemStatus struct {
	Overall   string
	Services  []ServiceStatus
	CPUCores  int
	CPUUsage  float64
	Memory    sysinfo.Usage
	Disk      sysinfo.Usage
	Runtime   sysinfo.Runtime
	Timestamp time.Time
}

// diskPath is the filesystem reported by SystemStatus.
const diskPath = "/"

// SystemStatus reports per-service health with uptimes and host resource
// usage. Host metrics that cannot be read are left zero.
func (s *Service) SystemStatus(ctx context.Context) SystemStatus {
	h := s.Health(ctx)
	now := h.CheckedAt

	services := []ServiceStatus{
		{Name: "api", Status: StatusHealthy, Uptime: s.processUptime(now), LastCheck: now},
		s.dependencyStatus("database", h.DatabaseUp, now),
		s.dependencyStatus("opensearch", h.EngineUp, now),
	}

	overall := h.Status()
	if !h.DatabaseUp && !h.EngineUp {
		overall = StatusDown
	}

	out := SystemStatus{
		Overall:   overall,
		Services:  services,
		CPUCores:  sysinfo.CPUCores(),
		Runtime:   sysinfo.ReadRuntime(),
		Timestamp: now,
	}

	if mem, load1, err := sysinfo.Memory(); err != nil {
		s.logger().Debug("memory usage unavailable", slog.Any("error", err))
	} else {
		out.Memory = mem
		out.CPUUsage = sysinfo.CPULoad(load1, out.CPUCores)
	}
	if disk, err := sysinfo.Disk(diskPath); err != nil {
		s.logger().Debug("disk usage unavailable", slog.Any("error", err))
	} else {
		out.Disk = disk
	}
	return out
}

func (s *Service) processUptime(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt)
}

func (s *Service) dependencyStatus(name string, up bool, now time.Time) ServiceStatus {
	if !up {
		return ServiceStatus{Name: name, Status: StatusDown, LastCheck: now, Message: "unreachable"}
	}
	return ServiceStatus{Name: name, Status: StatusHealthy, Uptime: s.uptime.uptime(name, now), LastCheck: now}
}
