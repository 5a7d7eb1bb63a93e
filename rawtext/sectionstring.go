package rawtext

import "strings"

// Edition selects which section-string dialect an emitter or parser targets:
// the available style codes and the colour palette both depend on it.
type Edition int

const (
	Java Edition = iota
	Bedrock
)

func (e Edition) palette() Palette {
	if e == Bedrock {
		return BedrockPalette
	}
	return JavaPalette
}

func (e Edition) hasUnderline() bool {
	return e == Java
}

func (e Edition) hasStrikethrough() bool {
	return e == Java
}

const sectionMark = '§'

// formattingState is a snapshot of the ambient style a section-string
// stream would be in at some point, in the emitter's terms (a resolved
// palette entry rather than an optional Colour, since "no colour set yet"
// and "explicitly reset to default" are the same state once you're
// mid-stream).
type formattingState struct {
	colour        PaletteEntry
	bold          bool
	italic        bool
	underlined    bool
	strikethrough bool
	obfuscated    bool
}

func newFormattingState(ed Edition) formattingState {
	pal := ed.palette()
	zero, _ := pal.ByCode('0')
	return formattingState{colour: zero}
}

// ToJavaSectionString renders one or more components as a Java Edition
// section-string. Multiple components are treated as independent lines and
// joined with "\n"; a single component's own children are concatenated with
// no separator.
func ToJavaSectionString(components ...TextComponent) string {
	return toSectionString(Java, components)
}

// ToBedrockSectionString is ToJavaSectionString for the Bedrock dialect.
func ToBedrockSectionString(components ...TextComponent) string {
	return toSectionString(Bedrock, components)
}

func toSectionString(ed Edition, components []TextComponent) string {
	lines := make([]string, 0, len(components))
	for _, c := range components {
		var out strings.Builder
		src := newFormattingState(ed)
		dst := newFormattingState(ed)
		emitComponent(ed, c, &src, &dst, &out)
		lines = append(lines, out.String())
	}
	return strings.Join(lines, "\n")
}

// emitComponent walks c, writing the escape codes needed to converge dst
// (the stream's actual emitted state) to the style c wants, given src (the
// ambient style in effect going into this node).
//
// src and dst are both threaded by pointer, matching the original
// algorithm's in-place mutation of a shared formatting object: a caller
// that wants a node's own style merge to affect a sibling passes the same
// pointer along, and a caller that wants siblings to merge independently
// passes each one a fresh copy. The two List/Children loops below differ in
// exactly this way - see emitRecursive.
func emitComponent(ed Edition, c TextComponent, src, dst *formattingState, out *strings.Builder) {
	switch c.Kind {
	case KindPlain:
		out.WriteString(c.Text)
	case KindRecursive:
		emitRecursive(ed, c.Components, src, dst, out)
	case KindCompound:
		emitCompoundNode(ed, c.Compound, src, dst, out)
	case KindInvalid:
		// Nothing meaningful to emit for a tag that never parsed.
	}
}

// emitRecursive renders a List's children. The first child is given the
// list's own ambient pointer directly, so if it's a Compound (or a nested
// List whose own first child eventually is), its style merge becomes the
// baseline every later sibling starts from. Every later sibling gets an
// independent copy of that now-settled baseline: its own merge never
// affects anyone else, which is why two siblings with the same declared
// style can still need a "§r" between them if an intervening sibling turned
// on something the baseline didn't have.
func emitRecursive(ed Edition, components []TextComponent, src, dst *formattingState, out *strings.Builder) {
	for i, child := range components {
		if i == 0 {
			emitComponent(ed, child, src, dst, out)
			continue
		}
		cp := *src
		emitComponent(ed, child, &cp, dst, out)
	}
}

func emitCompoundNode(ed Edition, node *CompoundNode, src, dst *formattingState, out *strings.Builder) {
	if node.EmptyNode != nil {
		cp := *src
		emitComponent(ed, *node.EmptyNode, &cp, dst, out)
	}

	pal := ed.palette()

	mergeBool(&src.bold, node.Formatting.Bold)
	mergeBool(&src.italic, node.Formatting.Italic)
	mergeBool(&src.obfuscated, node.Formatting.Obfuscated)
	if ed.hasUnderline() {
		mergeBool(&src.underlined, node.Formatting.Underlined)
	}
	if ed.hasStrikethrough() {
		mergeBool(&src.strikethrough, node.Formatting.Strikethrough)
	}

	reset := (dst.bold && !src.bold) ||
		(dst.italic && !src.italic) ||
		(dst.obfuscated && !src.obfuscated) ||
		(ed.hasUnderline() && dst.underlined && !src.underlined) ||
		(ed.hasStrikethrough() && dst.strikethrough && !src.strikethrough)

	if reset {
		out.WriteRune(sectionMark)
		out.WriteRune('r')
		*dst = newFormattingState(ed)
	}

	if node.Formatting.Colour != nil {
		src.colour = pal.FindClosest(node.Formatting.Colour.R, node.Formatting.Colour.G, node.Formatting.Colour.B)
	}

	if src.colour.Code != dst.colour.Code {
		out.WriteRune(sectionMark)
		out.WriteByte(src.colour.Code)
		dst.colour = src.colour
	}

	writeStyleOn(out, &dst.bold, src.bold, 'l')
	writeStyleOn(out, &dst.italic, src.italic, 'o')
	if ed.hasUnderline() {
		writeStyleOn(out, &dst.underlined, src.underlined, 'n')
	}
	if ed.hasStrikethrough() {
		writeStyleOn(out, &dst.strikethrough, src.strikethrough, 'm')
	}
	writeStyleOn(out, &dst.obfuscated, src.obfuscated, 'k')

	if node.Content != nil && node.Content.Kind == ContentText {
		out.WriteString(node.Content.Text)
	}

	for _, child := range node.Children {
		cp := *src
		emitComponent(ed, child, &cp, dst, out)
	}
}

func mergeBool(into *bool, v *bool) {
	if v != nil {
		*into = *v
	}
}

// writeStyleOn emits the escape code for a style turning on (src true, dst
// still false), leaving dst already-on styles alone: there is no "turn a
// style off" code short of a full §r reset, which is handled separately.
func writeStyleOn(out *strings.Builder, dstStyle *bool, srcStyle bool, code rune) {
	if srcStyle && !*dstStyle {
		out.WriteRune(sectionMark)
		out.WriteRune(code)
		*dstStyle = true
	}
}
