package main

import "embed"

// assets holds the demo page and the reference stylesheet. The
// stylesheet is the styling collaborator the engine itself never
// depends on: placement, colors, the exit fade, and the progress
// depletion animation all live here.
//
//go:embed assets
var assets embed.FS
