package main

import (
	"fmt"

	"thicket/app/config"
	"thicket/tui/components/details"

	"github.com/spf13/cobra"
)

var verbsNerdFonts bool

func init() {
	verbsCmd.Flags().BoolVar(&verbsNerdFonts, "nerd-fonts", false, "Use nerd font icons")
	rootCmd.AddCommand(verbsCmd)
}

var verbsCmd = &cobra.Command{
	Use:   "verbs",
	Short: "List the configured verbs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := config.New()
		store := loadStore(conf)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", conf.VerbsFile())

		for _, row := range details.VerbRows(store, 0, verbsNerdFonts) {
			fmt.Fprintln(out, row)
		}

		return nil
	},
}
