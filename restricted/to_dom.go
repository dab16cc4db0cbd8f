package restricted

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cozy/listedit-go/model"
)

// ExceptionClass is the class attached to rendered exception spans.
const ExceptionClass = "restricted-editing-exception"

// ToDOM renders a document with its exception markers: each block becomes a
// <p> element in which marked spans are wrapped in
// <span class="restricted-editing-exception"> elements. List grouping is the
// list package's concern; this adapter only projects the exception spans.
func ToDOM(doc *model.Document, set *MarkerSet) *html.Node {
	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Div, Data: atom.Div.String()}
	for i := 0; i < doc.ChildCount(); i++ {
		root.AppendChild(renderBlock(doc.Block(i), set.In(i)))
	}
	return root
}

// RenderHTML renders the blocks of a document as an HTML string, without
// the wrapping container.
func RenderHTML(doc *model.Document, set *MarkerSet) (string, error) {
	var sb strings.Builder
	for child := ToDOM(doc, set).FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func renderBlock(b *model.Block, markers []*Marker) *html.Node {
	p := &html.Node{Type: html.ElementNode, DataAtom: atom.P, Data: atom.P.String()}
	pos := 0
	for _, m := range markers {
		if m.From > pos {
			p.AppendChild(textNode(b.Text[pos:m.From]))
		}
		span := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Span,
			Data:     atom.Span.String(),
			Attr:     []html.Attribute{{Key: "class", Val: ExceptionClass}},
		}
		span.AppendChild(textNode(b.Text[m.From:m.To]))
		p.AppendChild(span)
		pos = m.To
	}
	if pos < len(b.Text) {
		p.AppendChild(textNode(b.Text[pos:]))
	}
	return p
}

func textNode(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
