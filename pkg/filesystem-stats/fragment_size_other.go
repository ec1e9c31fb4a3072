//go:build !linux

package filesystemstats

import "golang.org/x/sys/unix"

// statfs on BSD and darwin counts blocks in f_bsize units.
func fragmentSize(*unix.Statfs_t) int64 {
	return 0
}
