// Package builder provides shorthand constructors for the documents used
// across the test suites.
package builder

import "github.com/cozy/listedit-go/model"

// Doc builds a document from the given blocks.
func Doc(blocks ...*model.Block) *model.Document {
	return model.NewDocument(blocks...)
}

// P builds a plain paragraph block.
func P(text string) *model.Block {
	return model.NewBlock(text, nil)
}

// Bulleted builds a bulleted list block.
func Bulleted(id string, indent int, text string) *model.Block {
	return model.NewBlock(text, model.MustListAttrs(id, indent, model.Bulleted))
}

// Numbered builds a numbered list block.
func Numbered(id string, indent int, text string) *model.Block {
	return model.NewBlock(text, model.MustListAttrs(id, indent, model.Numbered))
}

// At builds a collapsed selection at the given block and offset.
func At(block, offset int) model.Selection {
	return model.Collapse(model.Position{Block: block, Offset: offset})
}

// Range builds a selection from one position to another within a document.
func Range(fromBlock, fromOffset, toBlock, toOffset int) model.Selection {
	return model.Selection{
		Anchor: model.Position{Block: fromBlock, Offset: fromOffset},
		Head:   model.Position{Block: toBlock, Offset: toOffset},
	}
}
