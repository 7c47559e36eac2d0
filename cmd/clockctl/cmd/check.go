package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vectornator/clocks/cmd/clockctl/internal/config"
	"github.com/vectornator/clocks/pkg/assets"
	"github.com/vectornator/clocks/pkg/clock"
)

func init() {
	RegisterCommand(func() *cobra.Command {
		return &cobra.Command{
			Use:   "check [dir]",
			Short: "Validate project configuration and clock assets",
			Long: `Resolve the project in dir (default: the enclosing Go module), then load
the numeral font and the background image the clock is configured with.

Every asset that is missing or cannot be decoded is listed; the command
fails if there is at least one.`,
			Args: cobra.MaximumNArgs(1),
			RunE: runCheck,
		}
	})
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	root, err := config.FindProjectRootFrom(dir)
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project: %s (%s)\n", cfg.AppName, cfg.AppID)
	fmt.Fprintf(out, "Engine:  %s\n", cfg.EngineVersion)
	fmt.Fprintf(out, "Assets:  %s\n", cfg.AssetsDir)
	fmt.Fprintf(out, "Clock:   font=%s background=%s speed=%g (%s)\n",
		cfg.Clock.Font, cfg.Clock.Background, cfg.Clock.SpeedRatio, cfg.ClockSource)

	view := clock.NewView(cfg.Clock, nil)
	loadErr := view.LoadAssets(assets.NewBundle(os.DirFS(cfg.AssetsDir)))
	problems := assetProblems(loadErr)
	if len(problems) == 0 {
		fmt.Fprintln(out, "OK")
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "  %s %q: %v\n", p.Kind, p.Asset, p.Err)
	}
	return fmt.Errorf("%d asset problem(s)", len(problems))
}

// assetProblems flattens the joined asset errors of a load.
func assetProblems(err error) []*assets.ConfigurationError {
	if err == nil {
		return nil
	}
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	var out []*assets.ConfigurationError
	for _, e := range errs {
		var cfgErr *assets.ConfigurationError
		if errors.As(e, &cfgErr) {
			out = append(out, cfgErr)
		}
	}
	return out
}
