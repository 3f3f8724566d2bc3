package renderer

import (
	"fmt"
	"strings"

	"github.com/eladshoshani/Investments"
)

// SweepMarkdown renders the lump-sum vs DCA comparison to a markdown string,
// one section per investment horizon.
func SweepMarkdown(r *investments.SweepReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Lump-Sum vs Dollar-Cost Averaging\n\n")
	fmt.Fprintf(&b, "Swept over %d monthly closing prices.\n", r.Samples)

	for _, h := range r.Horizons {
		fmt.Fprintf(&b, "\n## %d Year Investment Period\n\n", h.Years)
		if len(h.Entries) == 0 {
			fmt.Fprintln(&b, "Not enough history for this horizon.")
			continue
		}
		fmt.Fprintf(&b, "%d historical entry points, %s to %s.\n\n",
			h.LumpSum.Stats.N, h.Entries[0], h.Entries[len(h.Entries)-1])

		fmt.Fprintln(&b, "| Strategy | Mean | Std | Worst | Best |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, s := range []investments.StrategyReturns{h.LumpSum, h.DCA} {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				s.Strategy,
				investments.AsPercent(s.Stats.Mean).SignedString(),
				investments.AsPercent(s.Stats.Std).String(),
				investments.AsPercent(s.Stats.Min).SignedString(),
				investments.AsPercent(s.Stats.Max).SignedString(),
			)
		}
	}

	return b.String()
}
