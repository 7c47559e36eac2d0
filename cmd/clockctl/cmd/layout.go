package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-drift/drift/pkg/graphics"
	"github.com/spf13/cobra"

	"github.com/vectornator/clocks/pkg/assets"
	"github.com/vectornator/clocks/pkg/clock"
)

func init() {
	RegisterCommand(newLayoutCommand)
}

type layoutOptions struct {
	width, height float64
	at            string
	assetsDir     string
	speed         float64
}

func newLayoutCommand() *cobra.Command {
	var opts layoutOptions
	c := &cobra.Command{
		Use:   "layout",
		Short: "Run one layout pass and print the clock geometry",
		Long: `Run one layout pass for a view of the given size and print the dial,
pointer and numeral geometry together with the rotation installed on each
pointer.

Without --assets the numeral positions are estimated from the configured
numeral size.

Examples:
  clockctl layout --width 300 --height 300
  clockctl layout --width 390 --height 844 --at 10:09:30 --assets clockapp/assets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	f := c.Flags()
	f.Float64Var(&opts.width, "width", 300, "view width in logical pixels")
	f.Float64Var(&opts.height, "height", 300, "view height in logical pixels")
	f.StringVar(&opts.at, "at", "", "time of day as HH:MM or HH:MM:SS (default now)")
	f.StringVar(&opts.assetsDir, "assets", "", "asset directory with fonts/ and images/")
	f.Float64Var(&opts.speed, "speed", 1, "playback speed ratio")
	return c
}

func runLayout(out, errOut io.Writer, opts layoutOptions) error {
	t, err := parseAt(opts.at, time.Now())
	if err != nil {
		return err
	}
	cfg := clock.Config{SpeedRatio: opts.speed}
	if err := cfg.Validate(); err != nil {
		return err
	}

	view := clock.NewView(cfg, fixedClock(t))
	if opts.assetsDir != "" {
		// Reported by Layout below.
		_ = view.LoadAssets(assets.NewBundle(os.DirFS(opts.assetsDir)))
	}

	size := graphics.Size{Width: opts.width, Height: opts.height}
	if err := view.Layout(size); err != nil {
		if errors.Is(err, clock.ErrDegenerateBounds) {
			return fmt.Errorf("layout %gx%g: %w", size.Width, size.Height, err)
		}
		fmt.Fprintf(errOut, "warning: %v\n", err)
	}

	face, _ := view.Face()
	d := face.Dial
	fmt.Fprintf(out, "time      %s\n", t.Format("15:04:05.000"))
	fmt.Fprintf(out, "dial      center (%.1f, %.1f)  radius %.1f\n", d.Center.X, d.Center.Y, d.Radius)
	fmt.Fprintf(out, "bounds    (%.1f, %.1f)-(%.1f, %.1f)\n", d.Bounds.Left, d.Bounds.Top, d.Bounds.Right, d.Bounds.Bottom)

	for _, h := range clock.Hands {
		p := face.Pointers.Of(h)
		r, _ := view.Animator().Rotation(h)
		visible := ""
		if !p.Visible() {
			visible = "  hidden"
		}
		fmt.Fprintf(out, "pointer   %-8s width %g  length %.1f  start %.2f°  period %s  speed %.4f°/s%s\n",
			h, p.Width, p.Length, clock.Degrees(r.Start), r.Period, clock.Degrees(r.Velocity()), visible)
	}

	numerals := face.Numerals
	note := ""
	if len(numerals) == 0 {
		placed := clock.PlaceNumerals(d, view.Config().NumeralSize)
		numerals = placed[:]
		note = "  (estimated)"
	}
	for _, n := range numerals {
		fmt.Fprintf(out, "numeral   %-2s  (%.1f, %.1f)%s\n", n.Label(), n.Center.X, n.Center.Y, note)
	}

	backdrop := "none"
	if face.Backdrop != nil {
		b := face.Backdrop.Bounds()
		backdrop = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	}
	fmt.Fprintf(out, "backdrop  %s\n", backdrop)
	return nil
}
