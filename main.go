// main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// --- Main Program Logic ---

// loadBookmarks reads and parses the bookmark file. The preferred shape is
// {"bookmarks": [...]}; a bare top-level array is accepted as a fallback.
func loadBookmarks(path string) ([]Bookmark, error) {
	dataBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading bookmark file '%s': %w", path, err)
	}

	var file BookmarkFile
	if err := json.Unmarshal(dataBytes, &file); err == nil && file.Bookmarks != nil {
		return file.Bookmarks, nil
	}

	var direct []Bookmark
	if errDirect := json.Unmarshal(dataBytes, &direct); errDirect != nil {
		return nil, fmt.Errorf("error parsing bookmark JSON '%s': %w", path, errDirect)
	}
	return direct, nil
}

// parseCenter parses a "lat,lon" flag value.
func parseCenter(value string) (lat, lon float64, err error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("center must be 'lat,lon', got %q", value)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return lat, lon, nil
}

func main() { // NOSONAR
	// --- Argument Parsing using flag package ---
	defaults := defaultPageConfig()
	outputFile := flag.String("o", "", "Output file path (default: stdout)")
	centerFlag := flag.String("center", fmt.Sprintf("%g,%g", defaults.CenterLat, defaults.CenterLon), "Initial map center as 'lat,lon'")
	zoomFlag := flag.Int("zoom", defaults.Zoom, "Initial map zoom level")
	formatFlag := flag.String("format", "html", "Output format (html, png, jpg/jpeg)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <bookmarks.json>\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "\nArguments:")
		fmt.Fprintln(os.Stderr, "  <bookmarks.json>  Path to the bookmark data file.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}
	bookmarkFile := args[0]
	exportFormat := strings.ToLower(*formatFlag)

	// --- File Reading & Parsing ---
	log.Printf("Reading bookmark file: %s", bookmarkFile)
	bookmarks, err := loadBookmarks(bookmarkFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Loaded %d bookmarks.", len(bookmarks))

	// --- Input Validation ---
	supportedFormats := map[string]bool{"html": true, "png": true, "jpg": true, "jpeg": true}
	if !supportedFormats[exportFormat] {
		log.Fatalf("Unsupported export format '%s'. Supported formats: html, png, jpg/jpeg", exportFormat)
	}
	if len(bookmarks) == 0 {
		log.Fatalf("Data error: No bookmarks found in '%s'", bookmarkFile)
	}

	cfg := defaults
	cfg.CenterLat, cfg.CenterLon, err = parseCenter(*centerFlag)
	if err != nil {
		log.Fatalf("Invalid -center flag: %v", err)
	}
	cfg.Zoom = *zoomFlag

	// --- Determine Output Writer ---
	var outputWriter io.Writer = os.Stdout
	var outFile *os.File = nil

	if *outputFile != "" {
		log.Printf("Output directed to file: %s", *outputFile)
		outFile, err = os.Create(*outputFile)
		if err != nil {
			log.Fatalf("Error creating output file '%s': %v", *outputFile, err)
		}
		defer func() {
			if outFile != nil {
				closeErr := outFile.Close()
				if closeErr != nil {
					log.Printf("Error closing output file '%s': %v", *outputFile, closeErr)
				}
			}
		}()
		outputWriter = outFile
	} else {
		log.Println("Output directed to stdout.")
	}

	// --- Generation ---
	log.Printf("Generating output for format: %s", exportFormat)
	page := buildPage(bookmarks, cfg)

	var genErr error
	switch exportFormat {
	case "html":
		htmlString, errHTML := renderPage(page)
		if errHTML != nil {
			genErr = fmt.Errorf("HTML generation failed: %w", errHTML)
		} else {
			_, genErr = io.WriteString(outputWriter, htmlString)
			if genErr != nil {
				genErr = fmt.Errorf("failed to write HTML output: %w", genErr)
			}
		}
	case "png", "jpg", "jpeg":
		genErr = generateImage(page, exportFormat, outputWriter)
	}

	// --- Handle Generation Errors ---
	if genErr != nil {
		if outFile != nil && *outputFile != "" {
			log.Printf("Attempting to remove potentially incomplete file: %s", *outputFile)
			removeErr := os.Remove(*outputFile)
			if removeErr != nil {
				log.Printf("Warning: Could not remove output file '%s' after error: %v", *outputFile, removeErr)
			}
		}
		log.Fatalf("Error generating %s: %v", exportFormat, genErr)
	}

	log.Printf("Successfully generated %s output.", strings.ToUpper(exportFormat))
	if *outputFile != "" {
		log.Printf("Output saved to: %s", *outputFile)
	}
}
