package core

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage describes the volume holding a scanned project.
type VolumeUsage struct {
	Path        string
	Total       uint64
	Free        uint64
	UsedPercent float64
}

// GetVolumeUsage reports capacity and free space for the volume containing path.
func GetVolumeUsage(path string) (VolumeUsage, error) {
	stat, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, err
	}
	return VolumeUsage{
		Path:        stat.Path,
		Total:       stat.Total,
		Free:        stat.Free,
		UsedPercent: stat.UsedPercent,
	}, nil
}
