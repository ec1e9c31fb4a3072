package hwinfo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jaypipes/ghw"
)

// ErrPartitionNotFound is returned when no partition is mounted at the
// requested mount point.
var ErrPartitionNotFound = errors.New("no partition mounted")

type HardwareInfo interface {
	Block() (*ghw.BlockInfo, error)
}

type hwInfo struct{}

func (h *hwInfo) Block() (*ghw.BlockInfo, error) {
	return ghw.Block()
}

func NewHardwareInfo() HardwareInfo {
	return &hwInfo{}
}

// PartitionForMountPoint returns the partition mounted at mountPoint, or
// ErrPartitionNotFound when the block inventory has no such partition.
func PartitionForMountPoint(hw HardwareInfo, mountPoint string) (*ghw.Partition, error) {
	bdev, err := hw.Block()
	if err != nil {
		return nil, err
	}
	want := filepath.Clean(mountPoint)
	for _, part := range bdev.Partitions {
		if part == nil || part.MountPoint == "" {
			continue
		}
		if filepath.Clean(part.MountPoint) == want {
			return part, nil
		}
	}
	return nil, fmt.Errorf("%w at %s", ErrPartitionNotFound, want)
}
