package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/compasshud/compass/internal/occupation"
)

var careersCmd = &cobra.Command{
	Use:   "careers [class]",
	Short: "List career classes, or the careers of one class",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

		if len(args) == 0 {
			fmt.Fprintln(tw, "CLASS\tNAME\tDESCRIPTION")
			for _, class := range occupation.Classes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", class.ID, class.Name, class.Description)
			}
			return tw.Flush()
		}

		careers := occupation.Careers(args[0])
		if len(careers) == 0 {
			return fmt.Errorf("unknown class: %s", args[0])
		}

		fmt.Fprintln(tw, "SOC\tTITLE\tWAGE\tGROWTH")
		for _, career := range careers {
			fmt.Fprintf(tw, "%s\t%s\t%.0f\t%+.1f%%\n", career.Code, career.Title, career.Wage, career.Growth)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(careersCmd)
}
