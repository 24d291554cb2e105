package commands

import (
	"fmt"
	"os"
	"strconv"

	"figstats/lib/figshare"
	"figstats/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var totalsInstitution *bool

func init() {
	totalsInstitution = totalsCmd.Flags().Bool("institution", false, "Scope the query to the configured institute.")
	rootCmd.AddCommand(totalsCmd)
}

var totalsCmd = &cobra.Command{
	Use:   "totals <item-type> <item-id>",
	Short: "Prints the all-time view, download and share totals of an item.",
	Long: "Prints the all-time view, download and share totals of an item.\n" +
		"The item type is one of article, author, collection, group or project.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		itemId, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			serviceutil.Fatal("item id must be an integer", err)
		}

		client := createClient()
		totals, err := client.GetTotals(cmd.Context(), itemId, figshare.ItemType(args[0]), *totalsInstitution)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Counter", "Total"})
		for _, counter := range figshare.Counters {
			t.AppendRow(table.Row{string(counter), totals[counter]})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
