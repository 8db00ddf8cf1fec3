// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tasksift/pkg/types"
)

// writeCandidates renders the parse result in the requested format.
func writeCandidates(w io.Writer, candidates []types.TaskCandidate, format string) error {
	switch format {
	case "table", "":
		formatTable(w, candidates)
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(candidates)
	case "yaml":
		data, err := yaml.Marshal(candidates)
		if err != nil {
			return fmt.Errorf("marshaling candidates: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

// formatTable writes candidates as a human-readable table.
func formatTable(w io.Writer, candidates []types.TaskCandidate) {
	if len(candidates) == 0 {
		fmt.Fprintln(w, "No task candidates found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-7s  %-5s  %-16s  %-15s  %s\n",
		"Rank", "Title", "Prio", "Conf", "Due", "Assignee", "Section")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, c := range candidates {
		title := c.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		due := ""
		if c.DueDate != nil {
			due = c.DueDate.Format("2006-01-02 15:04")
		}
		assignee := c.Assignee
		if len(assignee) > 15 {
			assignee = assignee[:12] + "..."
		}
		section := c.SectionHeader
		if c.IsStructured {
			section = "(structured)"
		}
		fmt.Fprintf(w, "%-4d  %-50s  %-7s  %-5d  %-16s  %-15s  %s\n",
			i+1, title, c.Priority, c.Confidence, due, assignee, section)
	}

	fmt.Fprintf(w, "\n%d candidates\n", len(candidates))
}
