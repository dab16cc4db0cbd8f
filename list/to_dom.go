package list

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cozy/listedit-go/model"
)

// ToDOM projects a document into an HTML node tree. Consecutive list blocks
// become nested <ul>/<ol> trees, blocks sharing an item identity render
// inside one <li>, and plain blocks render as top-level <p> elements. The
// returned node is a <div> containing the rendered blocks.
func ToDOM(doc *model.Document) *html.Node {
	root := element(atom.Div)
	var stack []*listFrame
	for i := 0; i < doc.ChildCount(); i++ {
		block := doc.Block(i)
		attrs := block.List
		if attrs == nil {
			stack = stack[:0]
			root.AppendChild(paragraph(block.Text))
			continue
		}

		// Close lists that are deeper than this block, and a same-level
		// list of the other type.
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.indent > attrs.Indent ||
				(top.indent == attrs.Indent && top.typ != attrs.Type) {
				stack = stack[:len(stack)-1]
				continue
			}
			break
		}

		if len(stack) == 0 || stack[len(stack)-1].indent < attrs.Indent {
			listEl := element(listAtom(attrs.Type))
			parent := root
			if len(stack) > 0 {
				// A deeper list nests inside the last item of the list
				// above it.
				top := stack[len(stack)-1]
				parent = top.list
				if top.item != nil {
					parent = top.item
				}
			}
			parent.AppendChild(listEl)
			stack = append(stack, &listFrame{list: listEl, indent: attrs.Indent, typ: attrs.Type})
		}

		top := stack[len(stack)-1]
		if top.item == nil || top.itemID != attrs.ItemID {
			li := element(atom.Li)
			top.list.AppendChild(li)
			top.item = li
			top.itemID = attrs.ItemID
		}
		top.item.AppendChild(paragraph(block.Text))
	}
	return root
}

// RenderHTML renders the blocks of a document as an HTML string, without the
// wrapping container.
func RenderHTML(doc *model.Document) (string, error) {
	var sb strings.Builder
	for child := ToDOM(doc).FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// listFrame is one open list element during rendering.
type listFrame struct {
	list   *html.Node
	item   *html.Node
	itemID string
	indent int
	typ    model.ListType
}

func listAtom(typ model.ListType) atom.Atom {
	if typ == model.Numbered {
		return atom.Ol
	}
	return atom.Ul
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func paragraph(text string) *html.Node {
	p := element(atom.P)
	p.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return p
}
