package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/linode/snapshot-filestore/pkg/filesystem"
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

type storeReport struct {
	Path             string `json:"path"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	ReadOnly         bool   `json:"readOnly"`
	TotalSpace       int64  `json:"totalSpace"`
	UsableSpace      int64  `json:"usableSpace"`
	UnallocatedSpace int64  `json:"unallocatedSpace"`
	// LiveUsableSpace is read through the store's named attribute, which is
	// not frozen. Absent when the store does not expose it.
	LiveUsableSpace *int64 `json:"liveUsableSpace,omitempty"`
}

func describe(p filesystem.Provider, paths []string) ([]storeReport, error) {
	reports := make([]storeReport, 0, len(paths))
	for _, path := range paths {
		store, err := p.Store(path)
		if err != nil {
			return nil, fmt.Errorf("store for %s: %w", path, err)
		}
		r := storeReport{
			Path:     path,
			Name:     store.Name(),
			Type:     store.Type(),
			ReadOnly: store.IsReadOnly(),
		}
		if r.TotalSpace, err = store.TotalSpace(); err != nil {
			return nil, err
		}
		if r.UsableSpace, err = store.UsableSpace(); err != nil {
			return nil, err
		}
		if r.UnallocatedSpace, err = store.UnallocatedSpace(); err != nil {
			return nil, err
		}
		if v, err := store.Attribute(filesystem.AttrUsableSpace); err == nil {
			if live, ok := v.(int64); ok {
				r.LiveUsableSpace = &live
			}
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func writeReports(w io.Writer, format outputFormat, reports []storeReport) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tSTORE\tTYPE\tRO\tTOTAL\tUSABLE\tUNALLOCATED\tLIVE USABLE")
	for _, r := range reports {
		live := "-"
		if r.LiveUsableSpace != nil {
			live = fmt.Sprint(*r.LiveUsableSpace)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\t%d\t%d\t%s\n",
			r.Path, r.Name, r.Type, r.ReadOnly, r.TotalSpace, r.UsableSpace, r.UnallocatedSpace, live)
	}
	return tw.Flush()
}
