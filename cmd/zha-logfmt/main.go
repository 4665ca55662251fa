// Zha-logfmt is a streaming formatter for Home Assistant Zigbee logs.
//
// It reads log lines from stdin (or the files given as arguments), keeps lines
// from the Zigbee stacks (zigpy, zha, bellows, zigpy_znp, zigpy_deconz),
// optionally narrows them to a single device, and prints one compact line per
// frame or message. Output is flushed after every line so it can sit in a
// live tail.
//
// Usage:
//
//	ha core logs -f | zha-logfmt [flags]
//	zha-logfmt [flags] saved.log
//
// See 'zha-logfmt --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/zha-logfmt/internal/urls"
	"github.com/muurk/zha-logfmt/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zha-logfmt [file...]",
	Short: "Compact live view of Home Assistant Zigbee logs",
	Long: `Filter and summarise Home Assistant Zigbee log lines.

Lines from the Zigbee stacks are reduced to one line each. ZNP frame logs
(AF.IncomingMsg.Callback and AF.DataRequestExt.Req) are decoded into cluster,
endpoint, link quality and ZCL header fields; everything else is shown as
"level logger | message".

Configuration comes from the environment and can be overridden by flags:
  DEVICE_NWK      Zigbee short address to follow (e.g. 0x92A7)
  DEVICE_IEEE     IEEE/EUI-64 address to follow
  MODULE_FILTER   Pipe-separated module names (default: zigpy|zha|bellows|zigpy_znp|zigpy_deconz)

Frame lines only appear when the Zigbee libraries log at debug level:
  ` + urls.LoggerIntegration,
	Example: `  # Follow all Zigbee traffic live
  ha core logs -f | zha-logfmt

  # Only one device, by short address
  ha core logs -f | zha-logfmt --nwk 0x92A7

  # Only the ZNP radio library, from a saved log
  zha-logfmt --modules zigpy_znp home-assistant.log`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFormat,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "zha-logfmt %s\n", version.Full())
	},
}
