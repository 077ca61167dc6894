package htmlutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under `node` in document order.
func GetText(node *html.Node) string {
	var buffer strings.Builder
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		getTextRecursive(child, buffer)
	}
}

// Text returns the combined text of every node in the selection with the
// surrounding whitespace trimmed.
func Text(sel *goquery.Selection) string {
	if sel == nil {
		return ""
	}
	var buffer strings.Builder
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer)
	}
	return strings.TrimSpace(buffer.String())
}

// Texts returns the trimmed text of each node in the selection separately.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	for _, n := range sel.Nodes {
		out = append(out, strings.TrimSpace(GetText(n)))
	}
	return out
}

// Parse parses an html document.
func Parse(body string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}
