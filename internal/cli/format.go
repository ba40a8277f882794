package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [cue_file]",
	Short: "Print a cue in canonical form",
	Long: `Parse a cue block and print it back in canonical form: dot separated
timestamps, single spaces around "-->", and no identifier line.

Examples:
  vttcue format cue.txt
  printf '1\n00:00:01,000 --> 00:00:02,000\nHi\n' | vttcue format`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	item, err := readCue(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), item.String())
	return err
}
