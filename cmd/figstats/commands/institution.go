package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"figstats/lib/figshare"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var institutionLimit *int

func init() {
	institutionLimit = institutionCmd.Flags().Int(
		"limit",
		figshare.DefaultInstitutionTotalsLimit,
		"How many accounts to aggregate. A negative limit aggregates every account.",
	)
	rootCmd.AddCommand(institutionCmd)
}

var institutionCmd = &cobra.Command{
	Use:   "institution",
	Short: "Prints per-author totals aggregated across the institution's accounts.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		totals, err := client.GetInstitutionTotals(cmd.Context(), figshare.InstitutionTotalsOptions{
			Limit: *institutionLimit,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		authorIds := make([]string, 0, len(totals))
		for authorId := range totals {
			authorIds = append(authorIds, authorId)
		}
		// keys are FormatInt output, ParseInt cannot fail on them
		sort.Slice(authorIds, func(i, j int) bool {
			a, _ := strconv.ParseInt(authorIds[i], 10, 64)
			b, _ := strconv.ParseInt(authorIds[j], 10, 64)
			return a < b
		})

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Author Id", "Views", "Downloads", "Shares"})
		for _, authorId := range authorIds {
			t.AppendRow(table.Row{
				authorId,
				totals[authorId][figshare.CounterViews],
				totals[authorId][figshare.CounterDownloads],
				totals[authorId][figshare.CounterShares],
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
