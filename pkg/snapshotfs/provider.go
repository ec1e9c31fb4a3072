// Package snapshotfs provides a filesystem provider that freezes the total,
// usable and unallocated space figures of the root store when it is created.
// Every other store inquiry reaches the underlying provider unchanged, which
// keeps space-dependent tests stable while other processes write to the disk.
package snapshotfs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/linode/snapshot-filestore/pkg/filesystem"
	"github.com/linode/snapshot-filestore/pkg/logger"
	"github.com/linode/snapshot-filestore/pkg/observability"
)

// Snapshot holds space figures, in bytes, read once from the root store.
type Snapshot struct {
	TotalSpace       int64
	UsableSpace      int64
	UnallocatedSpace int64
}

// Provider wraps a filesystem.Provider and serves the same Snapshot from
// every store it returns, whatever path the store was requested for.
type Provider struct {
	*filesystem.DelegatingProvider

	snapshot Snapshot
}

var _ filesystem.Provider = (*Provider)(nil)

// NewProvider reads the space figures of the delegate's root store and
// returns a provider serving them. Either all three figures are read or an
// error wrapping ErrSnapshot is returned.
func NewProvider(ctx context.Context, delegate filesystem.Provider) (*Provider, error) {
	log, ctx := logger.GetLogger(ctx)
	log, done := logger.WithMethod(log, "NewProvider")
	defer done()

	_, span := observability.StartFunctionSpan(ctx)
	start := time.Now()

	snap, err := capture(delegate)
	observability.RecordMetrics(observability.SnapshotCaptureTotal, observability.SnapshotCaptureDuration, observability.StatusOf(err), start)
	observability.TraceFunctionData(span, "NewProvider", snapshotParams(snap), err)
	if err != nil {
		return nil, err
	}

	observability.RecordSnapshot(snap.TotalSpace, snap.UsableSpace, snap.UnallocatedSpace)
	log.V(2).Info("Captured filesystem space snapshot",
		"totalSpace", snap.TotalSpace,
		"usableSpace", snap.UsableSpace,
		"unallocatedSpace", snap.UnallocatedSpace)

	return &Provider{
		DelegatingProvider: filesystem.NewDelegatingProvider(delegate),
		snapshot:           snap,
	}, nil
}

func capture(delegate filesystem.Provider) (Snapshot, error) {
	root, err := delegate.Path(filesystem.RootURI)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: resolve %s: %w", ErrSnapshot, filesystem.RootURI, err)
	}
	store, err := delegate.Store(root)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: store for %s: %w", ErrSnapshot, root, err)
	}

	var snap Snapshot
	if snap.TotalSpace, err = store.TotalSpace(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: total space of %s: %w", ErrSnapshot, root, err)
	}
	if snap.UsableSpace, err = store.UsableSpace(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: usable space of %s: %w", ErrSnapshot, root, err)
	}
	if snap.UnallocatedSpace, err = store.UnallocatedSpace(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: unallocated space of %s: %w", ErrSnapshot, root, err)
	}
	return snap, nil
}

func snapshotParams(snap Snapshot) map[string]string {
	return map[string]string{
		"totalSpace":       strconv.FormatInt(snap.TotalSpace, 10),
		"usableSpace":      strconv.FormatInt(snap.UsableSpace, 10),
		"unallocatedSpace": strconv.FormatInt(snap.UnallocatedSpace, 10),
	}
}

// Snapshot returns the figures captured at construction.
func (p *Provider) Snapshot() Snapshot {
	return p.snapshot
}

// Store returns the delegate's store for path with its space figures
// replaced by the snapshot. Lookup errors are returned unchanged.
func (p *Provider) Store(path string) (filesystem.Store, error) {
	start := time.Now()
	store, err := p.DelegatingProvider.Store(path)
	observability.RecordMetrics(observability.StoreLookupTotal, observability.StoreLookupDuration, observability.StatusOf(err), start)
	if err != nil {
		return nil, err
	}
	return &snapshotStore{Store: store, snapshot: p.snapshot}, nil
}
