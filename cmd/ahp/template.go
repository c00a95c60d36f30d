// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/hierarchy"
	"github.com/katalvlaran/ahp/internal/bundle"
)

var templateCmd = &cobra.Command{
	Use:   "template FILE",
	Short: "List the matrices and judgments an analysis file still needs",
	Long: `Template reports, for the file's level, every required comparison matrix
and the upper-triangle cells that have no judgment yet. With --skeleton it
prints the file back as YAML with every missing cell set to "1", ready to be
edited.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skeleton, _ := cmd.Flags().GetBool("skeleton")
		level, _ := cmd.Flags().GetInt("level")
		return runTemplate(cmd.OutOrStdout(), args[0], level, skeleton)
	},
}

func init() {
	templateCmd.Flags().Bool("skeleton", false, "print the completed analysis file instead of a gap list")
	templateCmd.Flags().Int("level", 0, "override the level declared in the file (1, 2 or 3)")

	rootCmd.AddCommand(templateCmd)
}

func runTemplate(w io.Writer, path string, level int, skeleton bool) error {
	f, err := bundle.Read(path)
	if err != nil {
		return err
	}
	in, err := f.Input()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if level != 0 {
		in.Level = hierarchy.Level(level)
	}
	if !in.Level.Valid() {
		return fmt.Errorf("%s: %w: got %d", path, hierarchy.ErrInvalidLevel, int(in.Level))
	}

	if skeleton {
		return bundle.Encode(w, bundle.FromInput(bundle.Skeleton(in)))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATRIX\tITEMS\tSTATUS")
	for _, g := range bundle.Gaps(in) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Key, strings.Join(g.Items, ", "), gapStatus(g))
	}

	return tw.Flush()
}

func gapStatus(g bundle.Gap) string {
	switch {
	case g.Err != nil:
		return g.Err.Error()
	case g.Complete():
		return "complete"
	}
	pairs := make([]string, len(g.Missing))
	for i, p := range g.Missing {
		pairs[i] = p.String()
	}
	status := fmt.Sprintf("%d missing: %s", len(g.Missing), strings.Join(pairs, " "))
	if !g.Supplied {
		status = "not supplied, " + status
	}

	return status
}
