package cli

import (
	"fmt"

	"github.com/mgpai22/vttcue/internal/subtitle"
	"github.com/spf13/cobra"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [cue_file]",
	Short: "Shift the timing of a cue",
	Long: `Shift a cue's start and end. Both timestamps are first scaled by
--ratio, then the offset is added. Offsets may be negative.

Examples:
  vttcue shift cue.txt --seconds 2
  vttcue shift cue.txt --milliseconds=-500
  vttcue shift cue.txt --ratio 1.0427`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().Int("hours", 0, "Hours to add")
	shiftCmd.Flags().Int("minutes", 0, "Minutes to add")
	shiftCmd.Flags().IntP("seconds", "s", 0, "Seconds to add")
	shiftCmd.Flags().IntP("milliseconds", "m", 0, "Milliseconds to add")
	shiftCmd.Flags().
		Float64P("ratio", "r", 1.0, "Scale factor applied before the offset (e.g., 25/23.976)")
}

func runShift(cmd *cobra.Command, args []string) error {
	hours, _ := cmd.Flags().GetInt("hours")
	minutes, _ := cmd.Flags().GetInt("minutes")
	seconds, _ := cmd.Flags().GetInt("seconds")
	millis, _ := cmd.Flags().GetInt("milliseconds")
	ratio, _ := cmd.Flags().GetFloat64("ratio")

	if ratio <= 0 {
		return fmt.Errorf("ratio must be positive, got %g", ratio)
	}

	item, err := readCue(cmd, args)
	if err != nil {
		return err
	}

	offset := subtitle.Offset{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: millis,
	}
	item.Shift(offset, ratio)

	logger.Infow("Shifted cue",
		"start", item.Start.String(),
		"end", item.End.String(),
		"ratio", ratio,
	)
	if item.Start.Ordinal() < 0 {
		logger.Warnw("Cue starts before zero, it will render as 00:00:00.000",
			"start_ms", item.Start.Ordinal())
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), item.String())
	return err
}
