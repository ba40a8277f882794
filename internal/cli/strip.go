package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stripCmd = &cobra.Command{
	Use:   "strip [cue_file]",
	Short: "Remove ASS styling codes from a cue",
	Long: `Remove literal ASS override codes such as \i1, \b0 or \bord<size> from
the cue text and print the cleaned cue.

With --tags, <...> markup is removed as well.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func init() {
	rootCmd.AddCommand(stripCmd)

	stripCmd.Flags().Bool("tags", false, "Also remove <...> tags")
}

func runStrip(cmd *cobra.Command, args []string) error {
	tags, _ := cmd.Flags().GetBool("tags")

	item, err := readCue(cmd, args)
	if err != nil {
		return err
	}

	before := item.Text
	item.StripStrangeChars()
	if tags {
		item.Text = item.TextWithoutTags()
	}

	logger.Debugw("Stripped cue",
		"removed_bytes", len(before)-len(item.Text),
	)

	_, err = fmt.Fprint(cmd.OutOrStdout(), item.String())
	return err
}
