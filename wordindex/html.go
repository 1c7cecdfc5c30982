package wordindex

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AddHTML counts the words of the textual content of an HTML fragment.
// It does not interpret layout and styling, but extracts the pure text.
// Content of script and style elements is skipped.
func (idx *Index) AddHTML(input io.Reader) (int, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		tracer().Errorf("wordindex: cannot parse HTML: %v", err)
		return 0, err
	}
	n := 0
	for _, node := range nodes {
		n += idx.collectText(node)
	}
	return n, nil
}

func (idx *Index) collectText(n *html.Node) int {
	if n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style) {
		return 0
	}
	cnt := 0
	if n.Type == html.TextNode {
		cnt += idx.AddString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cnt += idx.collectText(c)
	}
	return cnt
}
