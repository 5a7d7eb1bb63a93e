package rawtext

import "strings"

// FromJavaSectionString parses a Java Edition section-string. When
// splitNewline is false, the whole string is treated as a single logical
// line and returned as the first value (the slice is nil). When true, s is
// split on "\n" and each line is parsed independently into the returned
// slice (the first value is the zero TextComponent). Splitting on "\n" only
// happens at this boundary: it never applies inside a parsed tree, since a
// Recursive node's children already concatenate with no separator.
func FromJavaSectionString(s string, splitNewline bool) (TextComponent, []TextComponent) {
	return fromSectionString(Java, s, splitNewline)
}

// FromBedrockSectionString is FromJavaSectionString for the Bedrock dialect.
func FromBedrockSectionString(s string, splitNewline bool) (TextComponent, []TextComponent) {
	return fromSectionString(Bedrock, s, splitNewline)
}

func fromSectionString(ed Edition, s string, splitNewline bool) (TextComponent, []TextComponent) {
	if !splitNewline {
		return parseSectionStringLine(ed, s), nil
	}
	lines := strings.Split(s, "\n")
	out := make([]TextComponent, 0, len(lines))
	for _, line := range lines {
		out = append(out, parseSectionStringLine(ed, line))
	}
	return TextComponent{}, out
}

type sectionRun struct {
	text  string
	state formattingState
}

func parseSectionStringLine(ed Edition, s string) TextComponent {
	pal := ed.palette()
	state := newFormattingState(ed)

	var runs []sectionRun
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, sectionRun{text: buf.String(), state: state})
			buf.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == sectionMark && i+1 < len(runes) {
			next := state
			if applyCode(ed, pal, &next, runes[i+1]) {
				flush()
				state = next
				i++
				continue
			}
		}
		buf.WriteRune(r)
	}
	flush()

	switch len(runs) {
	case 0:
		return Plain("")
	case 1:
		return sectionRunToComponent(runs[0])
	default:
		children := make([]TextComponent, 0, len(runs))
		for _, r := range runs {
			children = append(children, sectionRunToComponent(r))
		}
		return Compound(&CompoundNode{Children: children})
	}
}

// applyCode interprets one section-string code against state, returning
// whether the code was recognised. 'n' (underline) and 'm' (strikethrough)
// are styles on Java but fall through to colour lookup on Bedrock, which
// has neither style and spends those letters on material tones instead.
func applyCode(ed Edition, pal Palette, state *formattingState, code rune) bool {
	switch code {
	case 'r':
		*state = newFormattingState(ed)
		return true
	case 'l':
		state.bold = true
		return true
	case 'o':
		state.italic = true
		return true
	case 'k':
		state.obfuscated = true
		return true
	case 'n':
		if ed.hasUnderline() {
			state.underlined = true
			return true
		}
	case 'm':
		if ed.hasStrikethrough() {
			state.strikethrough = true
			return true
		}
	}

	if code > 0xFF {
		return false
	}
	if entry, ok := pal.ByCode(byte(code)); ok {
		state.colour = entry
		return true
	}
	return false
}

// sectionRunToComponent converts one parsed run into a component, omitting
// the colour code '0' as an explicit colour since it's the palette's
// default/ambient entry rather than a colour anyone actually requested.
func sectionRunToComponent(r sectionRun) TextComponent {
	f := buildFormattingFromState(r.state)
	if isZeroFormatting(f) {
		return Plain(r.text)
	}
	return Compound(&CompoundNode{
		Content:    &Content{Kind: ContentText, Text: r.text},
		Formatting: f,
	})
}

func buildFormattingFromState(state formattingState) Formatting {
	var f Formatting
	if state.colour.Code != '0' {
		c := Colour{Name: state.colour.Name, R: state.colour.R, G: state.colour.G, B: state.colour.B}
		f.Colour = &c
	}
	if state.bold {
		v := true
		f.Bold = &v
	}
	if state.italic {
		v := true
		f.Italic = &v
	}
	if state.underlined {
		v := true
		f.Underlined = &v
	}
	if state.strikethrough {
		v := true
		f.Strikethrough = &v
	}
	if state.obfuscated {
		v := true
		f.Obfuscated = &v
	}
	return f
}

func isZeroFormatting(f Formatting) bool {
	return f.Colour == nil && f.Font == nil && f.Bold == nil && f.Italic == nil &&
		f.Underlined == nil && f.Strikethrough == nil && f.Obfuscated == nil && f.ShadowColour == nil
}
