package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
)

// Media resolution: remote images are fetched at generation time and
// inlined as base64 data URIs so the finished page carries no external
// media requests. Fetches are strictly sequential, one per media bookmark,
// with no caching across bookmarks sharing a URL.

// mediaClient is the shared client for media fetches. No timeout is set;
// the transport's defaults apply, so a hanging host stalls generation.
var mediaClient = &http.Client{}

// fetchImageDataURI GETs the image at rawURL and returns it as a data URI
// using the response's declared content type. Any transport error or
// non-200 status degrades to an empty string, which the browser renders as
// a broken-image placeholder; generation never aborts over media.
func fetchImageDataURI(rawURL string) string {
	resp, err := mediaClient.Get(rawURL)
	if err != nil {
		log.Printf("Warning: image fetch failed for %s: %v", rawURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Warning: image fetch for %s returned status %d", rawURL, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("Warning: reading image body from %s failed: %v", rawURL, err)
		return ""
	}

	contentType := resp.Header.Get("Content-Type")
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(body)
}

// extractYouTubeVideoID recognizes the three common YouTube URL shapes:
//
//	https://youtu.be/<id>
//	https://www.youtube.com/watch?v=<id>
//	https://youtube.com/embed/<id>
//
// Any other host or path returns "".
func extractYouTubeVideoID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	switch u.Hostname() {
	case "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	case "www.youtube.com", "youtube.com":
		if u.Path == "/watch" {
			return u.Query().Get("v")
		}
		if strings.HasPrefix(u.Path, "/embed/") {
			parts := strings.Split(u.Path, "/")
			if len(parts) >= 3 {
				return parts[2]
			}
		}
	}
	return ""
}

// youtubeThumbnailDataURI resolves a video URL to its hqdefault thumbnail
// and inlines it. Returns "" when no video id could be extracted.
func youtubeThumbnailDataURI(videoURL string) string {
	videoID := extractYouTubeVideoID(videoURL)
	if videoID == "" {
		log.Printf("Warning: could not extract a YouTube video id from %s", videoURL)
		return ""
	}
	thumbnailURL := fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
	return fetchImageDataURI(thumbnailURL)
}
