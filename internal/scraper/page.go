package scraper

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	multiSpacePattern   = regexp.MustCompile(`[ \t]+`)
	multiNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// Link is an anchor found on a page
type Link struct {
	Href string
	Text string
}

// Page is the visible text and anchors of one HTML document
type Page struct {
	Text  string
	Links []Link
}

// ParsePage reads an HTML document. Block elements become line breaks so the
// line-anchored heuristics see one heading or paragraph per line.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	p := &Page{}
	var sb strings.Builder
	walk(doc, &sb, p, 0)
	p.Text = cleanText(sb.String())
	return p, nil
}

func walk(n *html.Node, sb *strings.Builder, p *Page, depth int) {
	if depth > 100 {
		return
	}

	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "iframe", "svg", "template":
			return
		case "a":
			if href := attr(n, "href"); href != "" {
				p.Links = append(p.Links, Link{Href: href, Text: strings.TrimSpace(nodeText(n))})
			}
		}
		if isBlock(n.Data) {
			sb.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sb, p, depth+1)
	}

	if n.Type == html.ElementNode && isBlock(n.Data) {
		sb.WriteString("\n")
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "ul", "ol", "tr", "td", "th", "table",
		"h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "header", "footer", "dd", "dt":
		return true
	}
	return false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(nodeText(c))
	}
	return multiSpacePattern.ReplaceAllString(sb.String(), " ")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpacePattern.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = multiNewlinePattern.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
