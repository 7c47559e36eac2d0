package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vectornator/clocks/pkg/clock"
)

func init() {
	RegisterCommand(newAnglesCommand)
}

func newAnglesCommand() *cobra.Command {
	var at string
	c := &cobra.Command{
		Use:   "angles",
		Short: "Print pointer angles for a time of day",
		Long: `Print the hour, minute and second pointer angles, in degrees clockwise
from 12 o'clock, for a time of day (default: now).

The minute pointer creeps with the seconds and the hour pointer with the
minutes, so 03:15:30 reads hour 97.5°, minute 93°, second 180°.

Examples:
  clockctl angles
  clockctl angles --at 03:15:30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseAt(at, time.Now())
			if err != nil {
				return err
			}
			tod := clock.At(t)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s %s\n", "time", t.Format("15:04:05.000"))
			for _, h := range clock.Hands {
				fmt.Fprintf(out, "%-8s %.2f°\n", h, tod.Degrees(h))
			}
			return nil
		},
	}
	c.Flags().StringVar(&at, "at", "", "time of day as HH:MM or HH:MM:SS")
	return c
}
