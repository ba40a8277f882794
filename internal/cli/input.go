package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgpai22/vttcue/internal/subtitle"
	"github.com/spf13/cobra"
)

// reads one cue block from the file argument, or stdin when absent or "-"
func readCue(cmd *cobra.Command, args []string) (*subtitle.Item, error) {
	var (
		data   []byte
		err    error
		source = "stdin"
	)
	if len(args) > 0 && args[0] != "-" {
		source = args[0]
		data, err = os.ReadFile(source)
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cue from %s: %w", source, err)
	}

	item, err := parseCue(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse cue from %s: %w", source, err)
	}

	logger.Debugw("Parsed cue",
		"source", source,
		"index", item.Index.String(),
		"start", item.Start.String(),
		"end", item.End.String(),
	)
	return item, nil
}

// drops a byte order mark and the blank lines around the block
func parseCue(src string) (*subtitle.Item, error) {
	src = strings.TrimPrefix(src, "\ufeff")
	src = strings.Trim(src, "\r\n")
	return subtitle.ParseItem(src)
}
