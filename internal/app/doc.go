// Package app provides the orchestration layer for the flipgrid application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the flip
// states, and the UI. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read flipgrid config (TOML or YAML)
//	       ├─────> prefs.Load()      Theme and exclusive mode
//	       ├─────> setupLogging()    Debug log file or discard
//	       ├─────> NewStates()       One flip.State per item
//	       ├─────> StartAutoplay()   Optional random forces
//	       └─────> program.Run()     Start TUI (blocks)
//
//	Autoplay Loop:
//	┌─────────────────────────────────────────┐
//	│ StartAutoplay() goroutine               │
//	│  └─> program.Send(ui.ForceMsg)          │
//	│      └─> Update() calls State.ForceTo() │
//	└─────────────────────────────────────────┘
//
// The autoplay goroutine never touches a flip.State. Forces are delivered as
// messages, so every state mutation stays on the Bubble Tea update loop.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Debug log file cannot be created
//   - The program fails to start or render
//
// Preferences never fail startup; a broken prefs file falls back to defaults.
// A cancelled context ends the program quietly.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{Autoplay: 3}); err != nil {
//		log.Fatalf("flipgrid failed: %v", err)
//	}
package app
