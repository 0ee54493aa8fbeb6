// Package pkg provides the libraries behind statcard, an SVG stats card
// renderer.
//
// # Overview
//
// Statcard turns a profile's statistics (stars, commits, pull requests,
// issues, contributions and a rank) into a themed SVG card suitable for
// embedding in a README. The pkg directory is organized into three areas:
//
//  1. [statscard] and [card] - Card rendering (pure, no I/O)
//  2. [source] and [cache] - Where stats come from and where cards are kept
//  3. [server] and [config] - The HTTP surface and its configuration
//
// # Architecture
//
// The typical data flow:
//
//	Stats record (TOML, JSON or MongoDB)
//	         ↓
//	    [source] package (fetch with retry)
//	         ↓
//	    [statscard] package (assemble rows, measure, lay out)
//	         ↓
//	    [card/frame] package (SVG envelope, title, stylesheet)
//	         ↓
//	    SVG output (cached by [cache])
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/statcard/pkg/card/rank"
//	    "github.com/matzehuels/statcard/pkg/statscard"
//	)
//
//	svg, err := statscard.Render(statscard.Stats{
//	    Name:         "Anna",
//	    TotalStars:   1500,
//	    TotalCommits: 320,
//	    Rank:         rank.Rank{Level: "A", Percentile: 20},
//	}, statscard.Options{ShowIcons: true, Theme: "dark"})
//
// # Main Packages
//
// ## Rendering
//
// [statscard] - The card itself: stat assembly, visibility filtering, row
// building, sizing and the public [statscard.Render] entry point.
//
// [card] - Building blocks shared by cards: value formatting, flex and stack
// layout, themes, labels per locale, icons, the rank circle, stylesheets and
// the card frame.
//
// [svg] - A small element tree that writes escaped SVG markup.
//
// ## Infrastructure
//
// [source] - Stats sources: local record files and a MongoDB collection.
//
// [cache] - Rendered card caches: null, file and Redis backends.
//
// [server] - HTTP handler serving cards and error cards.
//
// [config] - Server configuration from files and STATCARD_* variables.
//
// [observability] - Hooks for render, cache and source events.
//
// [errors] - Structured error codes shared by all layers.
//
// [statscard]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/statscard
// [statscard.Render]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/statscard#Render
// [card]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/card
// [card/frame]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/card/frame
// [svg]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/svg
// [source]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/source
// [cache]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/statcard/pkg/errors
package pkg
