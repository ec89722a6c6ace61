package main

import (
	"fmt"
	"log"
)

// Popup width on screen. Leaflet's maxWidth option, applied to every popup.
const popupMaxWidth = 600

// Default camera settings for bookmarks that don't configure them.
const (
	defaultBookmarkZoom = 13
	defaultTileLayerID  = "Positron"
)

// markerIcon picks the Font Awesome glyph for a point marker based on the
// attached content kind.
func markerIcon(content *Content) string {
	if content == nil {
		return "info-sign"
	}
	switch content.Type {
	case ContentVideo:
		return "video-camera"
	case ContentImage:
		return "camera"
	case ContentText:
		return "align-left"
	default:
		return "info-sign"
	}
}

// toLatLngs flips a coordinate sequence from the input's [lon, lat] order
// into the [lat, lng] order Leaflet consumes.
func toLatLngs(points []LonLat) [][2]float64 {
	latlngs := make([][2]float64, len(points))
	for i, p := range points {
		latlngs[i] = [2]float64{p.Lat, p.Lon}
	}
	return latlngs
}

// appendMeasurement attaches a length/area annotation to an existing popup
// fragment, or synthesizes a minimal popup around it when the bookmark had
// no content.
func appendMeasurement(popup, title, measurement string) string {
	if popup != "" {
		return popup + fmt.Sprintf("<p>%s</p>", measurement)
	}
	return fmt.Sprintf(`<div class="modal-content"><h3>%s</h3><p>%s</p></div>`,
		escapeHTML(title), measurement)
}

// renderBookmark converts one bookmark into a renderable map feature plus
// its navigation entry.
//
// The feature is nil when the geometry kind is unsupported; the navigation
// entry then points at the fallback center so the bookmark's nav-pane link
// stays functional. The anchor is the point itself for a Point, the middle
// vertex for a LineString, and the vertex mean of the outer ring for a
// Polygon. The vertex mean is not the true area-weighted centroid; it is
// kept as the navigation target because correcting it would change where
// the camera lands.
func renderBookmark(b Bookmark, fallbackCenter LonLat) (*MapFeature, NavigationEntry) {
	title := bookmarkTitle(b)
	popup := renderContent(b.Content)

	var feature *MapFeature
	var anchor LonLat

	switch b.Geometry.Type {
	case GeometryPoint:
		anchor = b.Geometry.Point
		feature = &MapFeature{
			Kind:    FeatureMarker,
			LatLngs: toLatLngs([]LonLat{anchor}),
			Icon:    markerIcon(b.Content),
			Tooltip: title,
			Popup:   popup,
		}

	case GeometryLineString:
		points := b.Geometry.Line
		length := lineLengthMiles(points)
		popup = appendMeasurement(popup, title, fmt.Sprintf("Length: %.2f miles", length))
		style := getEffectiveLineStyle(b.Style)
		feature = &MapFeature{
			Kind:    FeaturePolyline,
			LatLngs: toLatLngs(points),
			Style:   &style,
			Tooltip: title,
			Popup:   popup,
		}
		anchor = points[len(points)/2]

	case GeometryPolygon:
		// Only the outer ring is rendered and measured; holes in further
		// rings are accepted in the input but ignored.
		outer := b.Geometry.Rings[0]
		area := ringAreaSqMiles(outer)
		popup = appendMeasurement(popup, title, fmt.Sprintf("Area: %.2f square miles", area))
		style := getEffectivePolygonStyle(b.Style)
		feature = &MapFeature{
			Kind:    FeaturePolygon,
			LatLngs: toLatLngs(outer),
			Style:   &style,
			Tooltip: title,
			Popup:   popup,
		}
		anchor = ringVertexMean(outer)

	default:
		log.Printf("Unsupported geometry type %q for bookmark %q, using fallback center", b.Geometry.RawType, title)
		anchor = fallbackCenter
	}

	entry := NavigationEntry{
		Lat:       anchor.Lat,
		Lon:       anchor.Lon,
		Zoom:      getInt(b.Zoom, defaultBookmarkZoom),
		TileLayer: b.TileLayer,
	}
	if entry.TileLayer == "" {
		entry.TileLayer = defaultTileLayerID
	}
	return feature, entry
}

// ringVertexMean is the arithmetic mean of a ring's vertices.
func ringVertexMean(ring []LonLat) LonLat {
	var sumLat, sumLon float64
	for _, p := range ring {
		sumLat += p.Lat
		sumLon += p.Lon
	}
	n := float64(len(ring))
	return LonLat{Lat: sumLat / n, Lon: sumLon / n}
}
