package main

import (
	"strings"
)

// --- Helper Functions for Effective Styles ---

// Helper to get value from pointer or default
func getString(ptr *string, def string) string {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getInt(ptr *int, def int) int {
	if ptr != nil {
		return *ptr
	}
	return def
}

// Per-geometry style defaults. These mirror what the popup annotations
// document: lines are blue and semi-transparent, polygons red with a red
// half-opacity fill.
const (
	defaultLineColor   = "blue"
	defaultLineWeight  = 5.0
	defaultLineOpacity = 0.7

	defaultPolygonColor       = "red"
	defaultPolygonWeight      = 2.0
	defaultPolygonOpacity     = 1.0
	defaultPolygonFillColor   = "red"
	defaultPolygonFillOpacity = 0.5
)

// getEffectiveLineStyle resolves a polyline style once per bookmark,
// merging the input overrides over the line defaults.
func getEffectiveLineStyle(override *StyleOverride) PathStyle {
	effective := PathStyle{
		Color:   defaultLineColor,
		Weight:  defaultLineWeight,
		Opacity: defaultLineOpacity,
	}
	if override == nil {
		return effective
	}
	effective.Color = getString(override.Color, effective.Color)
	effective.Weight = getFloat64(override.Weight, effective.Weight)
	effective.Opacity = getFloat64(override.Opacity, effective.Opacity)
	return effective
}

// getEffectivePolygonStyle resolves a filled-polygon style once per
// bookmark, merging the input overrides over the polygon defaults.
func getEffectivePolygonStyle(override *StyleOverride) PathStyle {
	effective := PathStyle{
		Color:       defaultPolygonColor,
		Weight:      defaultPolygonWeight,
		Opacity:     defaultPolygonOpacity,
		Fill:        true,
		FillColor:   defaultPolygonFillColor,
		FillOpacity: defaultPolygonFillOpacity,
	}
	if override == nil {
		return effective
	}
	effective.Color = getString(override.Color, effective.Color)
	effective.Weight = getFloat64(override.Weight, effective.Weight)
	effective.Opacity = getFloat64(override.Opacity, effective.Opacity)
	effective.FillColor = getString(override.FillColor, effective.FillColor)
	effective.FillOpacity = getFloat64(override.FillOpacity, effective.FillOpacity)
	return effective
}

// --- HTML Escaping ---

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes user-supplied text for use in markup, both element
// content and quoted attribute values.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// bookmarkTitle returns the display title, never empty.
func bookmarkTitle(b Bookmark) string {
	if b.Title == "" {
		return "Untitled"
	}
	return b.Title
}
