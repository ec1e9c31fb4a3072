package snapshotfs

import "github.com/linode/snapshot-filestore/pkg/filesystem"

// snapshotStore forwards to the live store except for the three space figures.
type snapshotStore struct {
	filesystem.Store

	snapshot Snapshot
}

func (s *snapshotStore) TotalSpace() (int64, error) {
	return s.snapshot.TotalSpace, nil
}

func (s *snapshotStore) UsableSpace() (int64, error) {
	return s.snapshot.UsableSpace, nil
}

func (s *snapshotStore) UnallocatedSpace() (int64, error) {
	return s.snapshot.UnallocatedSpace, nil
}
