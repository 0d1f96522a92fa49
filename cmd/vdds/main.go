// Command vdds is a command-line harness for the vdds pub/sub fabric. Each
// subcommand reproduces one of the fabric's seed scenarios (ping, fan-out,
// overflow, a publisher type collision, a shared-payload refcount
// walkthrough, and shutdown wake-up) against a real in-process Domain, or
// dumps/renders the topology of a domain built from a YAML scenario file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	domainName  string
	scenarioCfg string
	queueSize   int
	timeoutFlag time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vdds",
		Short: "vdds is a command line harness for the vdds pub/sub fabric",
		Long: `vdds drives an in-process fabric Domain from the command line.
Each subcommand reproduces one of the fabric's seed scenarios, or dumps and
renders the topology of a domain described by a YAML scenario file.`,
	}

	rootCmd.PersistentFlags().StringVar(&domainName, "domain", "DEFAULT", "domain name")
	rootCmd.PersistentFlags().StringVar(&scenarioCfg, "config", "", "path to a YAML scenario file")
	rootCmd.PersistentFlags().IntVar(&queueSize, "queue-size", 16, "subscriber queue capacity")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", time.Second, "scenario-specific wait timeout")

	rootCmd.AddCommand(newPingCommand())
	rootCmd.AddCommand(newFanoutCommand())
	rootCmd.AddCommand(newOverflowCommand())
	rootCmd.AddCommand(newCollisionCommand())
	rootCmd.AddCommand(newSharedCommand())
	rootCmd.AddCommand(newShutdownCommand())
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newDotCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
