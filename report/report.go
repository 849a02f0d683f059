// Package report renders clustering results for people (Text, SweepText,
// MSTText) and for programs (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/slink/core"
	"github.com/katalvlaran/slink/singlelink"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Text writes the summary of one run followed by a table with one row per
// cluster.
func Text(w io.Writer, res *singlelink.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "RUN:\t%s\n", res.RunID)
	fmt.Fprintf(tw, "NODES:\t%d\n", res.Nodes)
	fmt.Fprintf(tw, "EDGES:\t%d\n", res.Edges)
	fmt.Fprintf(tw, "MST SIZE:\t%d\n", res.MSTSize)
	fmt.Fprintf(tw, "MST WEIGHT:\t%.6g\n", res.MSTWeight)
	fmt.Fprintf(tw, "CLUSTER COUNT:\t%d\n", len(res.Breakdown))
	fmt.Fprintf(tw, "THRESHOLD:\t%.6g\n", res.Threshold)
	fmt.Fprintf(tw, "PURITY:\t%.6f\n", res.Purity)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = newTable(w)
	fmt.Fprintln(tw, "CLUSTER\tSIZE\tMAJORITY\tLABEL\tSHARE")
	fmt.Fprintln(tw, "-------\t----\t--------\t-----\t-----")
	for i, s := range res.Breakdown {
		share := 0.0
		if s.Size > 0 {
			share = float64(s.Majority) / float64(s.Size)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%s\t%.3f\n", i, s.Size, s.Majority, s.Label, share)
	}

	return tw.Flush()
}

// SweepText writes one row per run of a sweep.
func SweepText(w io.Writer, results []*singlelink.Result) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "K\tCLUSTERS\tTHRESHOLD\tPURITY")
	fmt.Fprintln(tw, "-\t--------\t---------\t------")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6f\n", r.K, len(r.Breakdown), r.Threshold, r.Purity)
	}

	return tw.Flush()
}

// MSTText writes the spanning tree one edge per row, heaviest last.
func MSTText(w io.Writer, nodes int, mst []core.Edge) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "NODES:\t%d\n", nodes)
	fmt.Fprintf(tw, "MST SIZE:\t%d\n", len(mst))
	fmt.Fprintf(tw, "MST WEIGHT:\t%.6g\n", core.TotalWeight(mst))
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	tw = newTable(w)
	fmt.Fprintln(tw, "#\tA\tB\tWEIGHT")
	for i, e := range mst {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%.6g\n", i, e.A, e.B, e.Weight)
	}

	return tw.Flush()
}

// JSON writes v as indented JSON; v is typically a *singlelink.Result or a
// slice of them.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
