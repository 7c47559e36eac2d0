// Package main is a Drift app that shows a full-screen analog clock.
package main

import (
	"embed"
	"log"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"

	"github.com/vectornator/clocks/pkg/assets"
	"github.com/vectornator/clocks/pkg/clock"
	"github.com/vectornator/clocks/pkg/clockview"
)

//go:embed assets
var assetFS embed.FS

var backgroundColor = graphics.RGB(0x1C, 0x1C, 0x22)

// App returns the root widget for the clock app.
func App() core.Widget {
	engine.SetBackgroundColor(backgroundColor)
	bundle, cfg := loadBundle()
	return clockview.ClockView{
		Config:        cfg,
		Assets:        bundle,
		SemanticLabel: "Wall clock",
	}
}

// loadBundle opens the embedded assets and their clock.yaml. Failures are
// logged and fall back to defaults; the clock still runs without assets.
func loadBundle() (*assets.Bundle, clock.Config) {
	bundle, err := assets.NewBundle(assetFS).Sub("assets")
	if err != nil {
		log.Printf("clock assets: %v", err)
		return assets.NewBundle(nil), clock.DefaultConfig()
	}
	cfg, err := clock.LoadConfig(bundle.FS())
	if err != nil {
		log.Printf("clock config: %v", err)
		cfg = clock.DefaultConfig()
	}
	return bundle, cfg
}
