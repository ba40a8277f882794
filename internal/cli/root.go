package cli

import (
	"os"
	"strconv"

	"github.com/mgpai22/vttcue/internal/logging"
	"github.com/spf13/cobra"
)

const verboseEnv = "VTTCUE_VERBOSE"

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "vttcue",
	Short: "Parse, shift and inspect WebVTT cues",
	Long: `vttcue works on a single WebVTT cue block read from a file or stdin.

A cue block is an optional identifier line, a timing line such as
"00:00:01.000 --> 00:00:03.500 align:start", and one or more text lines.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("verbose") {
			verbose, _ = strconv.ParseBool(os.Getenv(verboseEnv))
		}
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output (or set "+verboseEnv+")")
}
