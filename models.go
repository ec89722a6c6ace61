package main

import (
	"encoding/json"
	"fmt"
)

// --- Input Structs ---

// Bookmark is one user-authored point of interest: a geometry, optional
// media/text content, display style overrides, and camera settings used
// when the bookmark is selected from the navigation pane.
type Bookmark struct {
	Title     string         `json:"title"`
	Geometry  Geometry       `json:"geometry"`
	Content   *Content       `json:"content,omitempty"`
	Style     *StyleOverride `json:"style,omitempty"`
	TileLayer string         `json:"tile_layer,omitempty"` // defaults to "Positron"
	Zoom      *int           `json:"zoom,omitempty"`       // defaults to 13
}

// BookmarkFile is the root object form of the input file. A bare JSON array
// of bookmarks is also accepted (see loadBookmarks).
type BookmarkFile struct {
	Bookmarks []Bookmark `json:"bookmarks"`
}

// GeometryType enumerates the geometry kinds the renderer understands.
// Anything else is carried through as GeometryUnsupported so the bookmark
// still gets a navigation entry.
type GeometryType string

const (
	GeometryPoint       GeometryType = "Point"
	GeometryLineString  GeometryType = "LineString"
	GeometryPolygon     GeometryType = "Polygon"
	GeometryUnsupported GeometryType = ""
)

// LonLat is a single [longitude, latitude] coordinate in WGS84 degrees.
// The JSON wire order is longitude first, matching GeoJSON.
type LonLat struct {
	Lon float64
	Lat float64
}

// UnmarshalJSON decodes a [lon, lat] array.
func (p *LonLat) UnmarshalJSON(data []byte) error {
	var coords []float64
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	if len(coords) < 2 {
		return fmt.Errorf("coordinate pair needs 2 values, got %d", len(coords))
	}
	p.Lon = coords[0]
	p.Lat = coords[1]
	return nil
}

// MarshalJSON re-encodes the coordinate in wire order.
func (p LonLat) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Lon, p.Lat})
}

// Geometry is a closed tagged union over the supported geometry kinds.
// Exactly one of Point/Line/Rings is meaningful, selected by Type.
type Geometry struct {
	Type  GeometryType
	Point LonLat     // Type == GeometryPoint
	Line  []LonLat   // Type == GeometryLineString, len >= 2
	Rings [][]LonLat // Type == GeometryPolygon, Rings[0] is the outer boundary

	// RawType keeps the input's type tag verbatim for diagnostics when the
	// kind is unsupported.
	RawType string
}

// geometryWire is the on-disk shape of a geometry record.
type geometryWire struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// UnmarshalJSON decodes the tagged geometry record. An unrecognized type tag
// is not an error: the geometry comes back as GeometryUnsupported and the
// caller degrades to the fallback center.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var wire geometryWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	g.RawType = wire.Type

	switch GeometryType(wire.Type) {
	case GeometryPoint:
		if err := json.Unmarshal(wire.Coordinates, &g.Point); err != nil {
			return fmt.Errorf("invalid Point coordinates: %w", err)
		}
		g.Type = GeometryPoint
	case GeometryLineString:
		if err := json.Unmarshal(wire.Coordinates, &g.Line); err != nil {
			return fmt.Errorf("invalid LineString coordinates: %w", err)
		}
		g.Type = GeometryLineString
	case GeometryPolygon:
		if err := json.Unmarshal(wire.Coordinates, &g.Rings); err != nil {
			return fmt.Errorf("invalid Polygon coordinates: %w", err)
		}
		g.Type = GeometryPolygon
	default:
		g.Type = GeometryUnsupported
	}
	return nil
}

// ContentType enumerates the popup content kinds.
type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentImage ContentType = "image"
	ContentText  ContentType = "text"
)

// Content is the optional media/text payload attached to a bookmark.
// URL is used by video/image, Text by text.
type Content struct {
	Type  ContentType `json:"type"`
	URL   string      `json:"url,omitempty"`
	Title string      `json:"title,omitempty"`
	Text  string      `json:"text,omitempty"`
}

// StyleOverride carries per-bookmark style fields from the input file.
// Nil fields fall back to the per-geometry defaults in helpers.go; the
// merge happens once per bookmark, at the start of rendering.
type StyleOverride struct {
	Color       *string  `json:"color,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
	FillColor   *string  `json:"fillColor,omitempty"`
	FillOpacity *float64 `json:"fillOpacity,omitempty"`
}

// PathStyle is a fully resolved vector style, serialized into the feature
// payload and handed to L.polyline / L.polygon as-is.
type PathStyle struct {
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	Opacity     float64 `json:"opacity"`
	Fill        bool    `json:"fill"`
	FillColor   string  `json:"fillColor,omitempty"`
	FillOpacity float64 `json:"fillOpacity,omitempty"`
}

// --- Derived Structs ---

// NavigationEntry is the camera target for one bookmark: where the map flies
// and which base layer becomes active when the bookmark is selected. One
// entry exists per bookmark, in input order, including bookmarks whose
// geometry could not be rendered.
type NavigationEntry struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Zoom      int     `json:"zoom"`
	TileLayer string  `json:"tile_layer"`
}

// FeatureKind enumerates the renderable Leaflet layer kinds.
type FeatureKind string

const (
	FeatureMarker   FeatureKind = "marker"
	FeaturePolyline FeatureKind = "polyline"
	FeaturePolygon  FeatureKind = "polygon"
)

// MapFeature is one rendered map feature. The whole set is serialized to
// JSON and materialized into Leaflet layers by the embedded page script.
// LatLngs is in [lat, lng] order, the order Leaflet consumes.
type MapFeature struct {
	Kind    FeatureKind  `json:"kind"`
	LatLngs [][2]float64 `json:"latlngs"`
	Icon    string       `json:"icon,omitempty"` // Font Awesome glyph, markers only
	Style   *PathStyle   `json:"style,omitempty"`
	Tooltip string       `json:"tooltip"`
	Popup   string       `json:"popup,omitempty"` // HTML fragment
}

// TileLayer describes one named base-map source. ID is the stable
// identifier shared between NavigationEntry.TileLayer and the page script's
// lookup table; Name is the display name shown in the layer control.
type TileLayer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
	Visible     bool   `json:"visible"`
}

// NavLink is one navigation-pane entry.
type NavLink struct {
	Index int
	Title string
}

// Page is the assembled page model: everything the HTML template needs.
// Built once by buildPage, never mutated afterwards.
type Page struct {
	CenterLat  float64
	CenterLon  float64
	Zoom       int
	TileLayers []TileLayer
	Features   []MapFeature
	NavIndex   []NavigationEntry
	NavLinks   []NavLink
}
