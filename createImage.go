// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// tileSettleDelay gives the headless browser time to fetch and paint the
// base tiles before the screenshot is taken.
const tileSettleDelay = 3 * time.Second

// generateImage renders the assembled page in headless Chrome and writes a
// screenshot of the map container. PNG is written as captured; jpg/jpeg
// re-encodes the capture at quality 90. Tile and Leaflet requests go out to
// the network, so snapshots need connectivity even though the HTML itself
// is self-contained.
func generateImage(page *Page, format string, outputWriter io.Writer) error {
	htmlString, err := renderPage(page)
	if err != nil {
		return fmt.Errorf("failed to render page for snapshot: %w", err)
	}

	// Load the document through a data URI, no temp file needed.
	htmlBase64 := base64.StdEncoding.EncodeToString([]byte(htmlString))
	dataURI := "data:text/html;base64," + htmlBase64
	log.Println("Created data URI for the rendered page.")

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	var screenshotBuf []byte

	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`#map`, chromedp.ByQuery),
		chromedp.Sleep(tileSettleDelay),
		chromedp.Screenshot(`#map`, &screenshotBuf, chromedp.ByQuery),
	}

	log.Println("Running chromedp tasks (navigate and screenshot)...")
	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	log.Println("Chromedp tasks completed successfully.")

	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	screenshotReader := bytes.NewReader(screenshotBuf)

	switch format {
	case "png":
		// Screenshot is already PNG, just copy it
		if _, err := io.Copy(outputWriter, screenshotReader); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, errPng := png.Decode(screenshotReader)
		if errPng != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", errPng)
		}
		opts := &jpeg.Options{Quality: 90}
		if err := jpeg.Encode(outputWriter, img, opts); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format '%s' with chromedp", format)
	}

	log.Printf("Successfully encoded %s snapshot.", strings.ToUpper(format))
	return nil
}
