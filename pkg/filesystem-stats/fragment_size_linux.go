package filesystemstats

import "golang.org/x/sys/unix"

// fragmentSize is the unit f_blocks, f_bfree and f_bavail are counted in.
func fragmentSize(stat *unix.Statfs_t) int64 {
	return int64(stat.Frsize) //nolint:unconvert // Frsize is int32 on 32-bit linux
}
