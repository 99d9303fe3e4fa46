package controllers

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rios0rios0/freezedeps/internal/domain/entities"
)

// writeReport renders one row per archived entry.
func writeReport(out io.Writer, result *entities.FreezeResult) error {
	archived := make(map[string]entities.ArchivedEntry, len(result.Archived))
	for _, a := range result.Archived {
		archived[a.Name] = a
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join([]string{"ENTRY", "SOURCE", "SIZE", "COMPRESSED", "TRANSFORM"}, "\t"))
	for _, entry := range result.Entries {
		a := archived[entry.Name]
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			entry.Name, entry.SourceSize, a.Size, a.CompressedSize, entry.Transform)
	}
	return tw.Flush()
}
