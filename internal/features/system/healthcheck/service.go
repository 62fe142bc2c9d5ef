package system_healthcheck

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"deskstore/internal/downdetect"
)

type ResourceStats struct {
	MemoryUsedPercent float64 `json:"memoryUsedPercent"`
	MemoryTotalMb     uint64  `json:"memoryTotalMb"`
	DiskUsedPercent   float64 `json:"diskUsedPercent"`
	DiskFreeGb        float64 `json:"diskFreeGb"`
}

type HealthcheckService struct {
	downdetectService *downdetect.DowndetectService
}

func (s *HealthcheckService) CheckAvailability() error {
	return s.downdetectService.IsAvailable()
}

func (s *HealthcheckService) GetResourceStats() (*ResourceStats, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskUsage, err := disk.Usage("/")
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &ResourceStats{
		MemoryUsedPercent: memory.UsedPercent,
		MemoryTotalMb:     memory.Total / 1024 / 1024,
		DiskUsedPercent:   diskUsage.UsedPercent,
		DiskFreeGb:        float64(diskUsage.Free) / 1024 / 1024 / 1024,
	}, nil
}
