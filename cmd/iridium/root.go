// Command iridium decodes Iridium downlink/uplink burst captures
// (the line-oriented RAW/RWA grammar) into classified frames.
package main

import (
	"fmt"
	"os"

	"github.com/Regentag/iridium-go/internal/config"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "iridium",
		Short:         "Decode Iridium burst captures",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String("config", "", "path to a YAML options file (§A.3)")
	root.AddCommand(newDecodeCommand())
	root.AddCommand(newLiveCommand())
	return root
}

// loadOptions applies DMRHub's flags-override-file precedence: load the
// optional YAML file named by --config, then overlay whichever flags the
// user actually passed on this command's own flag set.
func loadOptions(cmd *cobra.Command, flags config.Options, explicit config.FlagsSet) (config.Options, error) {
	path, _ := cmd.Flags().GetString("config")
	fromFile, err := config.Load(path)
	if err != nil {
		return config.Options{}, fmt.Errorf("loading config: %w", err)
	}
	return fromFile.Merge(flags, explicit), nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "iridium:", err)
		os.Exit(1)
	}
}
