package fetch

import (
	"strings"
	"testing"
)

func TestExtractArticle(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
<head>
  <title>Senate Vote Recap</title>
  <style>body { color: red; }</style>
  <script>var tracking = true;</script>
</head>
<body>
  <nav><a href="/">Home</a><a href="/news">News</a></nav>
  <h1>Senate Vote Recap</h1>
  <p>The bill passed on Tuesday.</p>
  <p>Lawmakers debated for hours.</p>
  <aside>Related stories</aside>
  <footer>Copyright 2026</footer>
  <script>moreTracking();</script>
</body>
</html>`

	title, text, err := ExtractArticle(page)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}

	if title != "Senate Vote Recap" {
		t.Errorf("title = %q", title)
	}
	if !strings.Contains(text, "The bill passed on Tuesday.") {
		t.Errorf("body text missing paragraph: %q", text)
	}
	if !strings.Contains(text, "Lawmakers debated for hours.") {
		t.Errorf("body text missing paragraph: %q", text)
	}

	for _, junk := range []string{"tracking", "color: red", "Home", "Related stories", "Copyright"} {
		if strings.Contains(text, junk) {
			t.Errorf("page chrome leaked into text: %q", junk)
		}
	}
}

func TestExtractArticle_TitleNotDoubled(t *testing.T) {
	page := `<html><head><title>Big Story</title></head><body><h1>Big Story</h1><p>The details follow.</p></body></html>`

	title, text, err := ExtractArticle(page)
	if err != nil {
		t.Fatal(err)
	}
	if title != "Big Story" {
		t.Errorf("title = %q", title)
	}
	if strings.HasPrefix(text, "Big Story") {
		t.Errorf("headline still leads the body text: %q", text)
	}
	if !strings.Contains(text, "The details follow.") {
		t.Errorf("body text missing: %q", text)
	}
}

func TestExtractArticle_NoTitle(t *testing.T) {
	title, text, err := ExtractArticle(`<html><body><p>Just a paragraph.</p></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if title != "" {
		t.Errorf("title = %q, want empty", title)
	}
	if text != "Just a paragraph." {
		t.Errorf("text = %q", text)
	}
}

func TestExtractArticle_MalformedHTML(t *testing.T) {
	// The HTML parser is forgiving; broken markup still yields text
	_, text, err := ExtractArticle(`<p>Unclosed paragraph <div>nested wrong</p></div> trailing`)
	if err != nil {
		t.Fatalf("ExtractArticle failed: %v", err)
	}
	if !strings.Contains(text, "Unclosed paragraph") {
		t.Errorf("text = %q", text)
	}
}

func TestExtractArticle_Empty(t *testing.T) {
	title, text, err := ExtractArticle("")
	if err != nil {
		t.Fatal(err)
	}
	if title != "" || text != "" {
		t.Errorf("got %q, %q", title, text)
	}
}
