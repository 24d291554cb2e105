package commands

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var accountsExcludeAdmin *bool

func init() {
	accountsExcludeAdmin = accountsCmd.Flags().Bool("exclude-admin", false, "Drop administrative and test accounts from the listing.")
	rootCmd.AddCommand(accountsCmd)
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Prints the accounts registered under the institution.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient()
		accounts, err := client.ListInstitutionAccounts(cmd.Context(), *accountsExcludeAdmin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Id", "First Name", "Last Name", "Email", "Active", "Author Id"})
		for _, account := range accounts {
			t.AppendRow(table.Row{
				account.Id,
				account.FirstName,
				account.LastName,
				account.Email,
				account.Active,
				account.AuthorId,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
