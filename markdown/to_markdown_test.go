package markdown_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/cozy/listedit-go/markdown"
	"github.com/cozy/listedit-go/test/builder"
)

var (
	doc      = builder.Doc
	p        = builder.P
	bulleted = builder.Bulleted
	numbered = builder.Numbered
)

func check(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected markdown (-want +got):\n%s", diff)
	}
}

func TestSerializeParagraphs(t *testing.T) {
	check(t, "one\n\ntwo\n", Serialize(doc(p("one"), p("two"))))
}

func TestSerializeBulletedList(t *testing.T) {
	got := Serialize(doc(
		p("intro"),
		bulleted("a", 0, "one"),
		bulleted("b", 0, "two"),
	))
	check(t, "intro\n\n- one\n- two\n", got)
}

func TestSerializeNumberedList(t *testing.T) {
	// ordinals count per level and reset when the level closes
	got := Serialize(doc(
		numbered("a", 0, "one"),
		numbered("b", 1, "nested one"),
		numbered("c", 1, "nested two"),
		numbered("d", 0, "two"),
		numbered("e", 1, "nested again"),
	))
	want := "1. one\n" +
		"    1. nested one\n" +
		"    2. nested two\n" +
		"2. two\n" +
		"    1. nested again\n"
	check(t, want, got)
}

func TestSerializeMultiBlockItem(t *testing.T) {
	// continuation blocks stay inside the item, without a marker
	got := Serialize(doc(
		bulleted("a", 0, "head"),
		bulleted("a", 0, "tail"),
		bulleted("b", 0, "next"),
	))
	check(t, "- head\n    tail\n- next\n", got)
}

func TestSerializeListAfterParagraphBreak(t *testing.T) {
	got := Serialize(doc(
		numbered("a", 0, "one"),
		p("break"),
		numbered("b", 0, "one again"),
	))
	check(t, "1. one\n\nbreak\n\n1. one again\n", got)
}
