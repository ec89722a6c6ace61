package main

import (
	"fmt"
)

// renderContent builds the popup HTML fragment for a bookmark's content.
// User-supplied titles, URLs and text are HTML-escaped; only the media data
// URIs produced by this program are inserted verbatim. Absent or
// unrecognized content renders as an empty fragment.
func renderContent(content *Content) string {
	if content == nil {
		return ""
	}

	switch content.Type {
	case ContentVideo:
		thumbnail := youtubeThumbnailDataURI(content.URL)
		return fmt.Sprintf(`<div class="modal-content"><h3>%s</h3>`+
			`<a href="%s" target="_blank"><img src="%s" alt="%s" style="max-width:100%%;"></a>`+
			`<p>Click the image to watch the video.</p></div>`,
			escapeHTML(content.Title), escapeHTML(content.URL), thumbnail, escapeHTML(content.Title))
	case ContentImage:
		dataURI := fetchImageDataURI(content.URL)
		return fmt.Sprintf(`<div class="modal-content"><h3>%s</h3>`+
			`<img src="%s" alt="%s" style="max-width:100%%;"></div>`,
			escapeHTML(content.Title), dataURI, escapeHTML(content.Title))
	case ContentText:
		return fmt.Sprintf(`<div class="modal-content"><h3>%s</h3><p>%s</p></div>`,
			escapeHTML(content.Title), escapeHTML(content.Text))
	default:
		return ""
	}
}
