// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ahp/scale"
)

var scaleCmd = &cobra.Command{
	Use:   "scale [TOKEN...]",
	Short: "Explain Saaty scale judgments",
	Long: `Scale prints the Saaty 1-9 scale. Given tokens such as 3 or 1/5, it
validates each one and shows its value, the mirrored judgment stored below
the diagonal and its verbal meaning.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScale(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

func runScale(w io.Writer, tokens []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(tokens) == 0 {
		fmt.Fprintln(tw, "VALUE\tMEANING")
		for _, k := range scale.Magnitudes() {
			fmt.Fprintf(tw, "%d\t%s\n", k, scale.Describe(k))
		}
		return tw.Flush()
	}

	invalid := 0
	fmt.Fprintln(tw, "TOKEN\tVALID\tVALUE\tRECIPROCAL\tMEANING")
	for _, tok := range tokens {
		v, err := scale.Parse(tok)
		if err != nil {
			invalid++
			fmt.Fprintf(tw, "%s\tno\t-\t-\t-\n", tok)
			continue
		}
		canon, _ := scale.Canonical(tok)
		fmt.Fprintf(tw, "%s\tyes\t%s\t%s\t%s\n", tok, strconv.FormatFloat(v, 'g', 4, 64), scale.Reciprocal(canon), scale.Explain(tok))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid judgment(s)", invalid)
	}

	return nil
}
