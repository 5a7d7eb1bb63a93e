package rawtext

import "github.com/go-mclib/rawtext/nbt"

// Kind discriminates the four TextComponent variants.
type Kind int

const (
	// KindPlain is a single string with no formatting.
	KindPlain Kind = iota
	// KindRecursive is an ordered sequence of children. The first child
	// merges its style into the list's ambient formatting; every later
	// child starts from a copy of that ambient and does not affect its
	// siblings.
	KindRecursive
	// KindCompound is a styled node with optional content, children and
	// formatting.
	KindCompound
	// KindInvalid wraps a raw tag that did not fit the schema.
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "Plain"
	case KindRecursive:
		return "Recursive"
	case KindCompound:
		return "Compound"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// TextComponent is the shared in-memory model every wire encoding pivots
// through. Exactly one of the payload fields is meaningful, selected by Kind.
type TextComponent struct {
	Kind Kind

	// Text holds the payload for KindPlain.
	Text string

	// Components holds the children for KindRecursive.
	Components []TextComponent

	// Compound holds the payload for KindCompound.
	Compound *CompoundNode

	// InvalidNBT holds the original tag for KindInvalid when the
	// component was produced while parsing NBT.
	InvalidNBT nbt.Tag

	// InvalidJSON holds the original decoded value (bool, float64, nil,
	// []any or map[string]any) for KindInvalid when the component was
	// produced while parsing JSON.
	InvalidJSON any
}

// Plain constructs a KindPlain component.
func Plain(text string) TextComponent {
	return TextComponent{Kind: KindPlain, Text: text}
}

// Recursive constructs a KindRecursive component.
func Recursive(components ...TextComponent) TextComponent {
	return TextComponent{Kind: KindRecursive, Components: components}
}

// Compound constructs a KindCompound component from the given node.
func Compound(node *CompoundNode) TextComponent {
	return TextComponent{Kind: KindCompound, Compound: node}
}

// CompoundNode is the payload of a KindCompound TextComponent.
type CompoundNode struct {
	// EmptyNode is the value that was stored under the empty-string key
	// in NBT, modelled as a virtual child emitted ahead of the node's own
	// content.
	EmptyNode *TextComponent

	// ContentType is the raw "type" field as declared on the wire, if
	// any. It need not agree with the Content actually extracted: a
	// declared type whose matching payload is absent falls back to the
	// ordered text/translatable/scoreboard/entity/keybind chain.
	ContentType string

	Content *Content

	// Children holds the "extra" list: independent siblings that each
	// inherit this node's formatting as their ambient starting point.
	Children []TextComponent

	Formatting Formatting

	Insertion *string
	// ClickEvent and HoverEvent are opaque: carried verbatim from the
	// source wire value (an nbt.Tag or a JSON-native value) and
	// re-emitted unchanged. Their internal schema is not modelled.
	ClickEvent any
	HoverEvent any

	// Unhandled holds every compound field the parser did not claim,
	// keyed by name, values in JSON-native form (string, float64, bool,
	// nil, []any, map[string]any). Never dropped, re-serialised last so
	// explicit fields win collisions.
	Unhandled map[string]any
}

// ContentKind discriminates the five Content variants. ContentKind's zero
// value, ContentNone, means the Compound carries no content payload at all.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentText
	ContentTranslatable
	ContentScoreboard
	ContentEntity
	ContentKeybind
)

// Content is the tagged variant attached to a CompoundNode describing what
// the node actually says, independent of how it's styled.
type Content struct {
	Kind ContentKind

	// ContentText
	Text string

	// ContentTranslatable
	TranslateKey      string
	TranslateFallback *string
	TranslateArgs     []TextComponent

	// ContentScoreboard
	ScoreSelector  *string
	ScoreObjective *string
	ScoreUnhandled map[string]any

	// ContentEntity
	EntitySelector  *string
	EntitySeparator *TextComponent

	// ContentKeybind
	KeybindKey *string
}

// Colour is an RGB colour with an optional original name, preserved so that
// unrecognised or hex names round-trip verbatim.
type Colour struct {
	Name    string
	R, G, B uint8
}

// RGBAInt is shadow_colour in its packed-integer wire form.
type RGBAInt struct {
	R, G, B, A uint8
}

// RGBAFloat is shadow_colour in its float-list wire form.
type RGBAFloat struct {
	R, G, B, A float64
}

// ShadowColour carries exactly one of its two representations, mirroring
// which wire form the source actually used.
type ShadowColour struct {
	Int   *RGBAInt
	Float *RGBAFloat
}

// Formatting bundles the style attributes of a CompoundNode. Every pointer
// field is tri-state: nil means "unset, inherit from the ambient style",
// a pointed-to true/false is an explicit override. Underlined and
// Strikethrough are Java-only; the section-string emitter silently drops
// them when targeting Bedrock.
type Formatting struct {
	Colour        *Colour
	Font          *string
	Bold          *bool
	Italic        *bool
	Underlined    *bool
	Strikethrough *bool
	Obfuscated    *bool
	ShadowColour  *ShadowColour
}
