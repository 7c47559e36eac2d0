// Package cmd implements the clockctl commands.
//
// Every command registers a constructor so tests can build a fresh command
// tree without flag state leaking between runs.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var commands []func() *cobra.Command

// RegisterCommand adds a command constructor to the CLI.
func RegisterCommand(fn func() *cobra.Command) {
	commands = append(commands, fn)
}

// NewRootCommand builds the clockctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "clockctl",
		Short: "Inspect and preview analog clock projects",
		Long: `clockctl works with Drift apps that embed the analog clock view.

It resolves the project configuration (drift.yaml and the bundled
clock.yaml), checks that the numeral font and background image load,
and runs layout passes without a device to show where everything lands.

Examples:
  clockctl check ./clockapp
  clockctl angles --at 03:15:30
  clockctl layout --width 390 --height 844 --at 10:09:30`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, fn := range commands {
		root.AddCommand(fn())
	}
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
