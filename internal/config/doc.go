// Package config loads the construction-time options of flipgrid.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flipgrid/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// Files ending in .yaml or .yml are decoded as YAML; every other file is
// decoded as TOML. Both formats share the same keys.
//
// # Default Values
//
//   - duration_ms: 500 (split evenly between the two half rotations)
//   - front_to_back: "left"
//   - back_to_front: "right"
//   - padding: 1, margin: 0
//   - scale: "center" (also "start", "stretch")
//   - items: 300, columns: 4, rows: 3
//   - card_width: 20, card_height: 7
//   - front_title: "Card %d", back_title: "Back"
//
// # TOML Format
//
//	duration_ms = 400
//	front_to_back = "right"
//	back_to_front = "left"
//	padding = 0
//	scale = "stretch"
//	items = 120
//	debug_log = "~/.cache/flipgrid/debug.log"
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, syntax errors, and invalid enum or negative values. All
// decoding problems are reported with a "parse config" prefix.
package config
