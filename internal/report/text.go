// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// writeText renders doc as aligned plain-text tables.
func writeText(w io.Writer, doc Document) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if doc.Source != "" {
		fmt.Fprintf(tw, "Analysis:\t%s\n", doc.Source)
	}
	fmt.Fprintf(tw, "Run:\t%s\n", doc.RunID)
	fmt.Fprintf(tw, "Level:\t%d\n", doc.Level)
	fmt.Fprintf(tw, "Method:\t%s\n", doc.Method)

	for _, m := range doc.Matrices {
		fmt.Fprintf(tw, "\nMatrix %s\n", m.Key)
		fmt.Fprintf(tw, "\t%s\tweight\n", strings.Join(m.Items, "\t"))
		for i, name := range m.Items {
			fmt.Fprintf(tw, "%s\t%s\t%.4f\n", name, strings.Join(m.Tokens[i], "\t"), m.Weights[i])
		}
		c := m.Consistency
		fmt.Fprintf(tw, "λmax=%.4f  CI=%.4f  RI=%.2f  CR=%.4f  (%s)\n", c.LambdaMax, c.CI, c.RI, c.CR, c.Status)
	}

	section(tw, "Criteria type priority", doc.TypePriority)
	section(tw, "Criteria priority", doc.CriteriaPriority)
	section(tw, "Alternatives priority", doc.AlternativesPriority)

	if len(doc.Ranking) > 0 {
		fmt.Fprintln(tw, "\nRanking")
		for _, r := range doc.Ranking {
			fmt.Fprintf(tw, "%d.\t%s\t%.4f\n", r.Rank, r.Name, r.Weight)
		}
	}

	if len(doc.Errors) > 0 {
		fmt.Fprintln(tw, "\nErrors")
		for _, e := range doc.Errors {
			fmt.Fprintf(tw, "-\t%s\n", e)
		}
	}

	return tw.Flush()
}

func section(w io.Writer, title string, ws []Weight) {
	if len(ws) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, x := range ws {
		fmt.Fprintf(w, "%s\t%.4f\n", x.Name, x.Weight)
	}
}
