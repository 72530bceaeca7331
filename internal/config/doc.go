// Package config loads the brand kit that drives shiftlogo.
//
// # Overview
//
// A brand kit names the figure geometry, the wordmark and tagline styling,
// and the variants to write (one color pair and file name each). With no
// file at all the defaults reproduce the ShiftCrew logo pair:
//
//   - ShiftCrew_Primary.png: #22c55e on white
//   - ShiftCrew_Dark.png: #22c55e on #111827
//
// # Resolution Order
//
// Load applies, lowest precedence first:
//
//  1. Default()
//  2. the brand kit file, if a path is given (.toml, .yaml or .yml)
//  3. a .env file in the working directory, then the process environment
//     (BRANDKIT_OUTPUT_DIR, BRANDKIT_FONT_DIRS, BRANDKIT_DPI,
//     BRANDKIT_LOG_LEVEL)
//
// Command-line flags are applied by the caller on top of the result.
// Fields missing from the file keep their defaults. A variants list in
// the file replaces the default variants rather than extending them.
//
// # TOML Format
//
//	dpi = 300
//	output_dir = "dist/brand"
//
//	[title]
//	font_file = "~/fonts/PlayfairDisplay-Bold.ttf"
//
//	[[variants]]
//	name = "primary"
//	background = "white"
//	foreground = "#22c55e"
//	file = "ShiftCrew_Primary.png"
//
// The YAML form uses the same keys, variants included.
//
// # Error Handling
//
// Load fails on unreadable or malformed files and on unknown keys. It also
// fails on invalid colors, layouts or log levels, and when two variants
// would write the same file. Nothing is rendered until the whole
// configuration is valid.
package config
