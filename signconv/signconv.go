// Package signconv demonstrates rawtext's parse/emit surface on a concrete
// cross-edition problem: Java stores sign text as four independent JSON
// text-component lines, while Bedrock (legacy format) stores it as one
// section-string blob under a single "Text" tag. Translating a sign between
// the two requires converting each Java line through TextComponent into a
// Bedrock-flavoured section-string line, and back.
//
// This package is a worked caller example, not part of the codec itself:
// the actual placement of these tags within a sign's NBT (utags.front_text
// vs a flat Text key, which varies across Bedrock versions) is the
// responsibility of whatever world-conversion tool links this package in.
package signconv

import (
	"strings"

	"github.com/go-mclib/rawtext/rawtext"
)

// JavaLinesToBedrockText converts up to four Java sign lines, each a JSON
// text-component payload, into a single Bedrock section-string blob with
// lines separated by "\n". A line that fails to parse as JSON is treated as
// empty, matching the source tool's "best effort, never fail the whole
// sign" behaviour.
func JavaLinesToBedrockText(lines []string) string {
	components := make([]rawtext.TextComponent, 0, len(lines))
	for _, line := range lines {
		c, err := rawtext.FromJavaJSON([]byte(line))
		if err != nil {
			c = rawtext.Plain("")
		}
		components = append(components, c)
	}
	return rawtext.ToBedrockSectionString(components...)
}

// BedrockTextToJavaLines splits a Bedrock sign's section-string blob back
// into per-line Java JSON text-component payloads.
func BedrockTextToJavaLines(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	_, lines := rawtext.FromBedrockSectionString(text, true)
	out := make([]string, 0, len(lines))
	for _, c := range lines {
		data, err := rawtext.ToJavaJSON(c)
		if err != nil {
			return nil, err
		}
		out = append(out, string(data))
	}
	return out, nil
}

// NormalizeBedrockText re-renders a Bedrock section-string through the
// component model, canonicalising redundant or out-of-order escape codes
// without changing what it displays.
func NormalizeBedrockText(text string) string {
	_, lines := rawtext.FromBedrockSectionString(text, true)
	rendered := make([]string, 0, len(lines))
	for _, c := range lines {
		rendered = append(rendered, rawtext.ToBedrockSectionString(c))
	}
	return strings.Join(rendered, "\n")
}
