package goquery

import (
	"strings"

	"github.com/hkjin/naverbook"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Elements dropped entirely during sanitization, including their content.
var droppedElements = map[string]bool{
	"script": true,
	"style":  true,
	"iframe": true,
	"object": true,
	"embed":  true,
	"form":   true,
	"input":  true,
	"button": true,
}

// SanitizeHTML returns a conservative rendition of an HTML fragment:
// script/style and other active elements are dropped with their content,
// comments are removed, event-handler and style attributes stripped, and
// javascript: URLs cleared.
func SanitizeHTML(fragment string) (string, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return "", naverbook.Errorf(naverbook.EINVALID, "failed to parse HTML fragment: %v", err)
	}

	var sb strings.Builder
	for _, n := range nodes {
		clean := sanitizeNode(n)
		if clean == nil {
			continue
		}
		if err := html.Render(&sb, clean); err != nil {
			return "", naverbook.Errorf(naverbook.EINTERNAL, "failed to render HTML fragment: %v", err)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// sanitizeNode returns the node with unsafe content removed, or nil if the
// node itself must be dropped.
func sanitizeNode(n *html.Node) *html.Node {
	switch n.Type {
	case html.CommentNode:
		return nil
	case html.ElementNode:
		if droppedElements[n.Data] {
			return nil
		}
		n.Attr = sanitizeAttrs(n.Attr)
	}

	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if sanitizeNode(c) == nil {
			n.RemoveChild(c)
		}
		c = next
	}
	return n
}

func sanitizeAttrs(attrs []html.Attribute) []html.Attribute {
	var out []html.Attribute
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		if strings.HasPrefix(key, "on") || key == "style" {
			continue
		}
		if (key == "href" || key == "src") &&
			strings.HasPrefix(strings.ToLower(strings.TrimSpace(a.Val)), "javascript:") {
			continue
		}
		out = append(out, a)
	}
	return out
}
