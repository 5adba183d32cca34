package fetch

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractArticle pulls the page title and the visible body text out of an
// HTML document. Script, style and page-chrome elements are skipped so
// the scorers see prose, not navigation.
func ExtractArticle(htmlContent string) (title, text string, err error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", "", err
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer", "aside":
				return
			case "title":
				if title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					title = strings.TrimSpace(n.FirstChild.Data)
				}
				return
			}
		}

		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				buf.WriteString(t)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)

	text = strings.TrimSpace(buf.String())
	// The <title> text also renders as the first heading on many pages;
	// strip it from the body so the headline is not scored twice.
	if title != "" && strings.HasPrefix(text, title) {
		text = strings.TrimSpace(strings.TrimPrefix(text, title))
	}

	return title, text, nil
}
