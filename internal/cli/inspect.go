package cli

import (
	"fmt"
	"io"

	"github.com/mgpai22/vttcue/internal/subtitle"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [cue_file]",
	Short: "Show timing and text details of a cue",
	Long: `Print a cue's identifier, timing, duration, reading rate and the
derived text views (tags removed, {...} keys removed, trimmed).

Examples:
  vttcue inspect cue.txt
  vttcue inspect cue.txt --output yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().
		StringP("output", "o", "text", "Output format (text, yaml)")
}

// summary of a single cue
type cueReport struct {
	Index                     string             `yaml:"index"`
	Start                     subtitle.Timestamp `yaml:"start"`
	End                       subtitle.Timestamp `yaml:"end"`
	Position                  string             `yaml:"position,omitempty"`
	DurationMillis            int64              `yaml:"duration_ms"`
	CharactersPerSecond       float64            `yaml:"characters_per_second"`
	Text                      string             `yaml:"text"`
	TextWithoutTags           string             `yaml:"text_without_tags"`
	TextWithoutKeys           string             `yaml:"text_without_keys"`
	TextWithoutTrailingSpaces string             `yaml:"text_without_trailing_spaces"`
}

func newCueReport(item *subtitle.Item) cueReport {
	return cueReport{
		Index:                     item.Index.String(),
		Start:                     item.Start,
		End:                       item.End,
		Position:                  item.Position,
		DurationMillis:            item.Duration().Ordinal(),
		CharactersPerSecond:       item.CharactersPerSecond(),
		Text:                      item.Text,
		TextWithoutTags:           item.TextWithoutTags(),
		TextWithoutKeys:           item.TextWithoutKeys(),
		TextWithoutTrailingSpaces: item.TextWithoutTrailingSpaces(),
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "yaml" {
		return fmt.Errorf("invalid output %q: supported outputs are text, yaml", output)
	}

	item, err := readCue(cmd, args)
	if err != nil {
		return err
	}

	report := newCueReport(item)
	if report.DurationMillis < 0 {
		logger.Warnw("Cue ends before it starts",
			"start", item.Start.String(),
			"end", item.End.String(),
		)
	}

	if output == "yaml" {
		return writeYAMLReport(cmd.OutOrStdout(), report)
	}
	return writeTextReport(cmd.OutOrStdout(), report)
}

func writeYAMLReport(w io.Writer, report cueReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

func writeTextReport(w io.Writer, report cueReport) error {
	_, err := fmt.Fprintf(w,
		"Index:      %s\nStart:      %s\nEnd:        %s\nPosition:   %s\n"+
			"Duration:   %dms\nChars/sec:  %.2f\nPlain text: %q\n",
		report.Index,
		report.Start,
		report.End,
		report.Position,
		report.DurationMillis,
		report.CharactersPerSecond,
		report.TextWithoutTags,
	)
	return err
}
