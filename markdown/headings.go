package markdown

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading is one heading extracted from compiled HTML, used by the page
// layer for tables of contents and section navigation.
type Heading struct {
	Level int    // 1..6
	ID    string // anchor id, may be empty when the compiler emitted none
	Text  string // flattened text content
}

// ExtractHeadings walks compiled HTML and returns its headings in document
// order. Malformed HTML is tolerated; the tokenizer recovers what it can.
func ExtractHeadings(compiled template.HTML) []Heading {
	root, err := html.Parse(strings.NewReader(string(compiled)))
	if err != nil {
		return nil
	}

	var out []Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.DataAtom); level > 0 {
				out = append(out, Heading{
					Level: level,
					ID:    attr(n, "id"),
					Text:  strings.TrimSpace(textContent(n)),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func headingLevel(a atom.Atom) int {
	switch a {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
