package pipeline

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrLinkRewrite indicates the HTML could not be parsed for link rewriting.
var ErrLinkRewrite = errors.New("link rewriting failed")

// markdownExtensions are the link targets rewritten to ".html".
var markdownExtensions = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative links to Markdown files at the HTML
// file the same batch produces: "guide.md#setup" becomes "guide.html#setup".
// URLs with a scheme or host, absolute paths and bare anchors are kept.
// Only <a href> is rewritten.
func RewriteMarkdownLinks(fragment string) (string, error) {
	if !strings.Contains(fragment, "<a") {
		return fragment, nil
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLinkRewrite, err)
	}

	var buf strings.Builder
	for _, n := range nodes {
		rewriteLinks(n)
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("%w: %v", ErrLinkRewrite, err)
		}
	}
	return buf.String(), nil
}

func rewriteLinks(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = htmlTarget(attr.Val)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteLinks(c)
	}
}

// htmlTarget returns href with a Markdown file extension replaced by ".html".
func htmlTarget(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" || strings.HasPrefix(u.Path, "/") {
		return href
	}

	ext := path.Ext(u.Path)
	for _, md := range markdownExtensions {
		if strings.EqualFold(ext, md) {
			u.Path = strings.TrimSuffix(u.Path, ext) + ".html"
			return u.String()
		}
	}
	return href
}
