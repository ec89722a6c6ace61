package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderContentAbsent(t *testing.T) {
	if got := renderContent(nil); got != "" {
		t.Errorf("renderContent(nil) = %q, want empty", got)
	}
}

func TestRenderContentUnknownType(t *testing.T) {
	content := &Content{Type: "gallery", Title: "ignored"}
	if got := renderContent(content); got != "" {
		t.Errorf("renderContent(gallery) = %q, want empty", got)
	}
}

func TestRenderContentText(t *testing.T) {
	content := &Content{Type: ContentText, Title: "T", Text: "hello"}
	got := renderContent(content)

	for _, want := range []string{"<h3>T</h3>", "<p>hello</p>", `class="modal-content"`} {
		if !strings.Contains(got, want) {
			t.Errorf("text popup missing %q in %q", want, got)
		}
	}
}

func TestRenderContentTextEscapesUserInput(t *testing.T) {
	content := &Content{
		Type:  ContentText,
		Title: `<script>alert("t")</script>`,
		Text:  "fish & chips <b>bold</b>",
	}
	got := renderContent(content)

	if strings.Contains(got, "<script>") || strings.Contains(got, "<b>") {
		t.Fatalf("user markup leaked unescaped into popup: %q", got)
	}
	for _, want := range []string{"&lt;script&gt;", "fish &amp; chips", "&lt;b&gt;bold&lt;/b&gt;"} {
		if !strings.Contains(got, want) {
			t.Errorf("popup missing escaped fragment %q in %q", want, got)
		}
	}
}

func TestRenderContentImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpeg bytes"))
	}))
	defer server.Close()

	content := &Content{Type: ContentImage, URL: server.URL + "/photo.jpg", Title: "A Photo"}
	got := renderContent(content)

	if !strings.Contains(got, `src="data:image/jpeg;base64,`) {
		t.Errorf("image popup missing inlined data URI: %q", got)
	}
	if !strings.Contains(got, "<h3>A Photo</h3>") {
		t.Errorf("image popup missing title heading: %q", got)
	}
}

func TestRenderContentVideoUnresolvable(t *testing.T) {
	// An unrecognized video URL still renders title, link and caption; the
	// thumbnail degrades to a broken-image placeholder.
	content := &Content{Type: ContentVideo, URL: "https://example.com/clip", Title: "My Clip"}
	got := renderContent(content)

	for _, want := range []string{
		"<h3>My Clip</h3>",
		`href="https://example.com/clip"`,
		"Click the image to watch the video.",
		`src=""`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("video popup missing %q in %q", want, got)
		}
	}
}
