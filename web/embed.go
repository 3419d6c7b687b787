// Package web embeds the storefront's templates, static assets, and
// markdown page content.
package web

import "embed"

// Templates holds the HTML templates for every page and partial.
//
//go:embed templates
var Templates embed.FS

// Static holds the public assets served under /static/.
//
//go:embed static
var Static embed.FS

// Content holds the markdown sources for the static pages.
//
//go:embed content
var Content embed.FS
