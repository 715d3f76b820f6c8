// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/featseq/featseq/cmd/featseq/cli"
	"github.com/featseq/featseq/lib/vocab"
)

type vocabParams struct {
	cli.JSONOutput
	Tables []string `flag:"table,t" desc:"print only the named tables (repeatable)"`
}

func vocabCommand() *cli.Command {
	var params vocabParams

	return &cli.Command{
		Name:    "vocab",
		Summary: "Print the vocabulary registry tables",
		Description: `Print the built-in vocabulary tables that govern encoding: each table's
name, and every entry's integer id and token name.

With --table, print only the named tables; the flag repeats and also
accepts a comma-separated list. With --json, the output is the same
table-name to {name: id} mapping that encoded payloads embed, so it
can seed an external tokenizer directly.`,
		Usage:  "featseq vocab [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Print every table",
				Command:     "featseq vocab",
			},
			{
				Description: "Print the key and feature-type tables",
				Command:     "featseq vocab --table KEY --table TYPE_ID",
			},
			{
				Description: "Export the full registry as JSON",
				Command:     "featseq vocab --json > vocab.json",
			},
		},
		Run: func(_ context.Context, args []string, _ *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("vocab takes no positional arguments, got %q", args[0])
			}

			selected, err := selectTables(vocab.TakeSnapshot(), params.Tables)
			if err != nil {
				return err
			}

			if done, err := params.EmitJSON(selected); done {
				return err
			}
			return printTables(os.Stdout, selected)
		},
	}
}

// selectTables filters the snapshot down to the requested table names.
// An empty request selects everything.
func selectTables(snapshot vocab.Snapshot, names []string) (vocab.Snapshot, error) {
	if len(names) == 0 {
		return snapshot, nil
	}

	selected := make(vocab.Snapshot, len(names))
	for _, name := range names {
		forward, ok := snapshot[name]
		if !ok {
			known := make([]string, 0, len(snapshot))
			for table := range snapshot {
				known = append(known, table)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown table %q (known tables: %s)", name, strings.Join(known, ", "))
		}
		selected[name] = forward
	}
	return selected, nil
}

// printTables writes each table as a two-column listing, tables in
// name order and entries in id order.
func printTables(w io.Writer, snapshot vocab.Snapshot) error {
	tableNames := make([]string, 0, len(snapshot))
	for name := range snapshot {
		tableNames = append(tableNames, name)
	}
	sort.Strings(tableNames)

	for i, tableName := range tableNames {
		if i > 0 {
			fmt.Fprintln(w)
		}
		forward := snapshot[tableName]
		fmt.Fprintf(w, "%s (%d entries)\n", tableName, len(forward))

		type entry struct {
			name string
			id   int64
		}
		entries := make([]entry, 0, len(forward))
		for name, id := range forward {
			entries = append(entries, entry{name: name, id: id})
		}
		sort.Slice(entries, func(a, b int) bool {
			if entries[a].id != entries[b].id {
				return entries[a].id < entries[b].id
			}
			return entries[a].name < entries[b].name
		})

		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "  %d\t%s\n", e.id, e.name)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
