package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"figstats/lib/figshare"
	"figstats/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var timelineGranularity *string
var timelineInstitution *bool

func init() {
	timelineGranularity = timelineCmd.Flags().String("granularity", "day", "The bucket size: day, week or month.")
	timelineInstitution = timelineCmd.Flags().Bool("institution", false, "Scope the query to the configured institute.")
	rootCmd.AddCommand(timelineCmd)
}

var timelineCmd = &cobra.Command{
	Use:   "timeline <item-type> <item-id>",
	Short: "Prints a bucketed breakdown of an item's views, downloads and shares.",
	Long: "Prints a bucketed breakdown of an item's views, downloads and shares.\n" +
		"The item type is one of article, author, collection, group or project.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		itemId, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			serviceutil.Fatal("item id must be an integer", err)
		}

		client := createClient()
		timeline, err := client.GetTimeline(
			cmd.Context(),
			itemId,
			figshare.ItemType(args[0]),
			figshare.Granularity(*timelineGranularity),
			*timelineInstitution,
		)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		// merge the per-counter timelines on their dates
		values := map[string]map[figshare.Counter]int64{}
		for counter, points := range timeline {
			for _, point := range points {
				if values[point.Date] == nil {
					values[point.Date] = map[figshare.Counter]int64{}
				}
				values[point.Date][counter] = point.Value
			}
		}
		dates := make([]string, 0, len(values))
		for date := range values {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Date", "Views", "Downloads", "Shares"})
		for _, date := range dates {
			t.AppendRow(table.Row{
				date,
				values[date][figshare.CounterViews],
				values[date][figshare.CounterDownloads],
				values[date][figshare.CounterShares],
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
