// generateHTML.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
)

// --- Page Assembly ---

// PageConfig is the generation-time configuration surface: the initial
// camera, overridable from the command line. It is not part of the
// bookmark file.
type PageConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

func defaultPageConfig() PageConfig {
	return PageConfig{
		CenterLat: 39.54316,
		CenterLon: -110.38948,
		Zoom:      3,
	}
}

// registeredTileLayers returns the four named base layers. The ID is the
// stable identifier bookmarks reference through tile_layer; exactly one
// layer, Positron, starts visible.
func registeredTileLayers() []TileLayer {
	return []TileLayer{
		{
			ID:          "OpenStreetMap",
			Name:        "OpenStreetMap",
			URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
			Attribution: "© OpenStreetMap contributors",
		},
		{
			ID:          "Positron",
			Name:        "Positron",
			URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
			Attribution: "© OpenStreetMap contributors © CARTO",
			Visible:     true,
		},
		{
			ID:          "Dark Matter",
			Name:        "Dark Matter",
			URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
			Attribution: "© OpenStreetMap contributors © CARTO",
		},
		{
			ID:          "Esri Satellite",
			Name:        "Esri Satellite",
			URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
			Attribution: "Tiles © Esri",
		},
	}
}

// buildPage renders every bookmark in input order and assembles the page
// model: the feature set, the navigation index (one entry per bookmark,
// keyed by position) and the nav-pane links. Bookmarks with unsupported
// geometry contribute no feature but keep their navigation entry and link.
func buildPage(bookmarks []Bookmark, cfg PageConfig) *Page {
	fallbackCenter := LonLat{Lat: cfg.CenterLat, Lon: cfg.CenterLon}

	page := &Page{
		CenterLat:  cfg.CenterLat,
		CenterLon:  cfg.CenterLon,
		Zoom:       cfg.Zoom,
		TileLayers: registeredTileLayers(),
		Features:   make([]MapFeature, 0, len(bookmarks)),
		NavIndex:   make([]NavigationEntry, 0, len(bookmarks)),
		NavLinks:   make([]NavLink, 0, len(bookmarks)),
	}

	for i, bookmark := range bookmarks {
		feature, entry := renderBookmark(bookmark, fallbackCenter)
		if feature != nil {
			page.Features = append(page.Features, *feature)
		}
		page.NavIndex = append(page.NavIndex, entry)
		page.NavLinks = append(page.NavLinks, NavLink{Index: i, Title: bookmarkTitle(bookmark)})
	}

	return page
}

// pageData is what the HTML template executes against. The payloads are
// pre-marshalled JSON; json.Marshal escapes <, > and & so they are safe to
// embed inside the script element.
type pageData struct {
	CenterLat     float64
	CenterLon     float64
	Zoom          int
	PopupMaxWidth int
	NavLinks      []NavLink
	LayersJSON    template.JS
	FeaturesJSON  template.JS
	NavIndexJSON  template.JS
}

// renderPage serializes the page model into the final self-contained HTML
// document.
func renderPage(page *Page) (string, error) {
	layersJSON, err := json.Marshal(page.TileLayers)
	if err != nil {
		return "", fmt.Errorf("failed to serialize tile layers: %w", err)
	}
	featuresJSON, err := json.Marshal(page.Features)
	if err != nil {
		return "", fmt.Errorf("failed to serialize features: %w", err)
	}
	navJSON, err := json.Marshal(page.NavIndex)
	if err != nil {
		return "", fmt.Errorf("failed to serialize navigation index: %w", err)
	}

	data := pageData{
		CenterLat:     page.CenterLat,
		CenterLon:     page.CenterLon,
		Zoom:          page.Zoom,
		PopupMaxWidth: popupMaxWidth,
		NavLinks:      page.NavLinks,
		LayersJSON:    template.JS(layersJSON),
		FeaturesJSON:  template.JS(featuresJSON),
		NavIndexJSON:  template.JS(navJSON),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render page template: %w", err)
	}
	return buf.String(), nil
}

// pageTemplate is the whole document: two-pane layout CSS, the map
// container, the navigation pane, the zoom indicator, and the interaction
// script. The script runs against the three embedded payloads and keeps
// the map reference module-scoped; nothing is attached to window.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Map Presentation</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css">
<style>
body {
    margin: 0;
    padding: 0;
    display: flex;
    height: 100vh;
    width: 100vw;
    overflow: hidden;
    font-family: Arial, sans-serif;
}
#map {
    width: 80%;
    height: 100vh;
    flex-grow: 1;
    position: relative;
}
.nav-pane {
    width: 20%;
    min-width: 250px;
    height: 100vh;
    background: #fff;
    padding: 20px;
    box-sizing: border-box;
    overflow-y: auto;
    box-shadow: -2px 0 5px rgba(0,0,0,0.1);
    z-index: 1000;
}
.bookmark-link {
    display: block;
    padding: 10px;
    margin: 5px 0;
    background: #f0f0f0;
    border-radius: 4px;
    cursor: pointer;
    text-decoration: none;
    color: #333;
}
.bookmark-link:hover {
    background: #e0e0e0;
}
.modal-content {
    padding: 20px;
    background: white;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.2);
}
.zoom-indicator {
    position: absolute;
    bottom: 10px;
    left: 10px;
    padding: 5px 10px;
    background: rgba(255, 255, 255, 0.8);
    border-radius: 4px;
    font-weight: bold;
    z-index: 1000;
}
.map-marker {
    background: #38aadd;
    border: 2px solid #fff;
    border-radius: 50%;
    box-shadow: 0 1px 4px rgba(0,0,0,0.4);
    display: flex;
    align-items: center;
    justify-content: center;
    color: #000;
    font-size: 14px;
}
</style>
</head>
<body>
<div id="map">
    <div id="zoom-indicator" class="zoom-indicator"></div>
</div>
<div class="nav-pane">
    <h2>Bookmarks</h2>
{{- range .NavLinks}}
    <a class="bookmark-link" href="#" data-bookmark="{{.Index}}">{{.Title}}</a>
{{- end}}
</div>
<script>
(function () {
    var layers = {{.LayersJSON}};
    var features = {{.FeaturesJSON}};
    var locations = {{.NavIndexJSON}};

    function init() {
        var map = L.map('map', {
            center: [{{.CenterLat}}, {{.CenterLon}}],
            zoom: {{.Zoom}},
            crs: L.CRS.EPSG3857
        });
        L.control.scale().addTo(map);

        var tileLayers = {};
        var baseMaps = {};
        layers.forEach(function (layer) {
            var tl = L.tileLayer(layer.url, { attribution: layer.attribution, id: layer.id });
            tileLayers[layer.id] = tl;
            baseMaps[layer.name] = tl;
            if (layer.visible) {
                tl.addTo(map);
            }
        });
        L.control.layers(baseMaps).addTo(map);

        features.forEach(function (f) {
            var layer;
            if (f.kind === 'marker') {
                layer = L.marker(f.latlngs[0], {
                    icon: L.divIcon({
                        className: 'map-marker',
                        html: '<i class="fa fa-' + f.icon + '"></i>',
                        iconSize: [30, 30],
                        iconAnchor: [15, 15]
                    })
                });
            } else if (f.kind === 'polyline') {
                layer = L.polyline(f.latlngs, f.style);
            } else if (f.kind === 'polygon') {
                layer = L.polygon(f.latlngs, f.style);
            } else {
                return;
            }
            layer.bindTooltip(f.tooltip);
            if (f.popup) {
                layer.bindPopup(f.popup, { maxWidth:{{.PopupMaxWidth}} });
            }
            layer.addTo(map);
        });

        function switchTileLayer(tileName) {
            for (var key in tileLayers) {
                map.removeLayer(tileLayers[key]);
            }
            if (tileLayers[tileName]) {
                tileLayers[tileName].addTo(map);
            } else {
                console.error('Tile layer ' + tileName + ' not found.');
            }
        }

        function zoomToBookmark(id) {
            var loc = locations[id];
            if (!loc) {
                return;
            }
            switchTileLayer(loc.tile_layer);
            map.flyTo([loc.lat, loc.lon], loc.zoom);
        }

        document.querySelector('.nav-pane').addEventListener('click', function (e) {
            var link = e.target.closest('.bookmark-link');
            if (!link) {
                return;
            }
            e.preventDefault();
            zoomToBookmark(parseInt(link.dataset.bookmark, 10));
        });

        map.on('click', function (e) {
            var latlngStr = e.latlng.lat.toFixed(5) + ', ' + e.latlng.lng.toFixed(5);
            navigator.clipboard.writeText(latlngStr).then(function () {
                alert('Coordinates ' + latlngStr + ' copied to clipboard.');
            }, function (err) {
                console.error('Could not copy text: ', err);
                alert('Could not copy coordinates to clipboard.');
            });
        });

        function updateZoomIndicator() {
            document.getElementById('zoom-indicator').innerText = 'Zoom Level: ' + map.getZoom();
        }
        map.on('zoomend', updateZoomIndicator);
        updateZoomIndicator();
    }

    if (document.readyState === 'complete') {
        init();
    } else {
        window.addEventListener('load', init);
    }
})();
</script>
</body>
</html>
`))
