package rawtext

import (
	"github.com/go-mclib/rawtext/nbt"
)

// FromJavaNBT converts a decoded Java NBT tag into a TextComponent. The
// input is never mutated; every tag that ends up referenced by the result
// (directly, or through an InvalidNBT payload) is a deep copy.
func FromJavaNBT(tag nbt.Tag) TextComponent {
	return parseNBTComponent(cloneTag(tag))
}

func parseNBTComponent(tag nbt.Tag) TextComponent {
	switch t := tag.(type) {
	case nbt.String:
		return Plain(string(t))
	case nbt.List:
		children := make([]TextComponent, 0, t.Len())
		for i := 0; i < t.Len(); i++ {
			children = append(children, parseNBTComponent(t.Get(i)))
		}
		return Recursive(children...)
	case nbt.Compound:
		node, ok := parseNBTCompoundNode(t)
		if !ok {
			return TextComponent{Kind: KindInvalid, InvalidNBT: tag}
		}
		return Compound(node)
	default:
		return TextComponent{Kind: KindInvalid, InvalidNBT: tag}
	}
}

func parseNBTCompoundNode(c nbt.Compound) (*CompoundNode, bool) {
	work := make(nbt.Compound, len(c))
	for k, v := range c {
		work[k] = v
	}

	node := &CompoundNode{}

	if empty, ok := work[""]; ok {
		delete(work, "")
		child := parseNBTComponent(empty)
		node.EmptyNode = &child
	}

	if t, ok := work["type"]; ok {
		if s, ok := t.(nbt.String); ok {
			node.ContentType = string(s)
		}
		delete(work, "type")
	}

	node.Content = extractNBTContent(node.ContentType, work)

	if extra, ok := work["extra"]; ok {
		delete(work, "extra")
		if list, ok := extra.(nbt.List); ok {
			for i := 0; i < list.Len(); i++ {
				node.Children = append(node.Children, parseNBTComponent(list.Get(i)))
			}
		}
	}

	node.Formatting = extractNBTFormatting(work)

	if ins, ok := work["insertion"]; ok {
		delete(work, "insertion")
		if s, ok := ins.(nbt.String); ok {
			v := string(s)
			node.Insertion = &v
		}
	}

	if click, ok := work["clickEvent"]; ok {
		delete(work, "clickEvent")
		node.ClickEvent = nbtToAny(click)
	}
	if hover, ok := work["hoverEvent"]; ok {
		delete(work, "hoverEvent")
		node.HoverEvent = nbtToAny(hover)
	}

	if len(work) > 0 {
		node.Unhandled = make(map[string]any, len(work))
		for k, v := range work {
			node.Unhandled[k] = nbtToAny(v)
		}
	}

	return node, true
}

// extractNBTContent tries declaredType's matching extractor first, then
// falls through the fixed text/translatable/scoreboard/entity/keybind chain
// regardless of what was declared, claiming fields from work as it goes.
func extractNBTContent(declaredType string, work nbt.Compound) *Content {
	type extractor struct {
		name string
		fn   func(nbt.Compound) *Content
	}
	chain := []extractor{
		{"text", extractNBTText},
		{"translatable", extractNBTTranslatable},
		{"score", extractNBTScoreboard},
		{"selector", extractNBTEntity},
		{"keybind", extractNBTKeybind},
	}

	if declaredType != "" {
		for _, e := range chain {
			if e.name == declaredType {
				if c := e.fn(work); c != nil {
					return c
				}
				break
			}
		}
	}

	for _, e := range chain {
		if c := e.fn(work); c != nil {
			return c
		}
	}
	return nil
}

func extractNBTText(work nbt.Compound) *Content {
	v, ok := work["text"]
	if !ok {
		return nil
	}
	s, ok := v.(nbt.String)
	if !ok {
		return nil
	}
	delete(work, "text")
	return &Content{Kind: ContentText, Text: string(s)}
}

func extractNBTTranslatable(work nbt.Compound) *Content {
	v, ok := work["translate"]
	if !ok {
		return nil
	}
	s, ok := v.(nbt.String)
	if !ok {
		return nil
	}
	delete(work, "translate")

	c := &Content{Kind: ContentTranslatable, TranslateKey: string(s)}

	if f, ok := work["fallback"]; ok {
		delete(work, "fallback")
		if fs, ok := f.(nbt.String); ok {
			v := string(fs)
			c.TranslateFallback = &v
		}
	}

	if a, ok := work["with"]; ok {
		delete(work, "with")
		if list, ok := a.(nbt.List); ok {
			for i := 0; i < list.Len(); i++ {
				c.TranslateArgs = append(c.TranslateArgs, parseNBTComponent(list.Get(i)))
			}
		}
	}

	return c
}

func extractNBTScoreboard(work nbt.Compound) *Content {
	v, ok := work["score"]
	if !ok {
		return nil
	}
	sub, ok := v.(nbt.Compound)
	if !ok {
		return nil
	}
	delete(work, "score")

	subWork := make(nbt.Compound, len(sub))
	for k, v := range sub {
		subWork[k] = v
	}

	c := &Content{Kind: ContentScoreboard}
	if n, ok := subWork["name"]; ok {
		delete(subWork, "name")
		if s, ok := n.(nbt.String); ok {
			v := string(s)
			c.ScoreSelector = &v
		}
	}
	if o, ok := subWork["objective"]; ok {
		delete(subWork, "objective")
		if s, ok := o.(nbt.String); ok {
			v := string(s)
			c.ScoreObjective = &v
		}
	}
	if len(subWork) > 0 {
		c.ScoreUnhandled = make(map[string]any, len(subWork))
		for k, v := range subWork {
			c.ScoreUnhandled[k] = nbtToAny(v)
		}
	}
	return c
}

func extractNBTEntity(work nbt.Compound) *Content {
	v, ok := work["selector"]
	if !ok {
		return nil
	}
	s, ok := v.(nbt.String)
	if !ok {
		return nil
	}
	delete(work, "selector")

	sel := string(s)
	c := &Content{Kind: ContentEntity, EntitySelector: &sel}

	if sep, ok := work["separator"]; ok {
		delete(work, "separator")
		comp := parseNBTComponent(sep)
		c.EntitySeparator = &comp
	}
	return c
}

func extractNBTKeybind(work nbt.Compound) *Content {
	v, ok := work["keybind"]
	if !ok {
		return nil
	}
	s, ok := v.(nbt.String)
	if !ok {
		return nil
	}
	delete(work, "keybind")
	key := string(s)
	return &Content{Kind: ContentKeybind, KeybindKey: &key}
}

func extractNBTFormatting(work nbt.Compound) Formatting {
	var f Formatting

	if v, ok := work["color"]; ok {
		delete(work, "color")
		if s, ok := v.(nbt.String); ok {
			c := colourFromName(JavaPalette, string(s))
			f.Colour = &c
		}
	}
	if v, ok := work["font"]; ok {
		delete(work, "font")
		if s, ok := v.(nbt.String); ok {
			val := string(s)
			f.Font = &val
		}
	}

	f.Bold = extractNBTBool(work, "bold")
	f.Italic = extractNBTBool(work, "italic")
	f.Underlined = extractNBTBool(work, "underlined")
	f.Strikethrough = extractNBTBool(work, "strikethrough")
	f.Obfuscated = extractNBTBool(work, "obfuscated")

	if v, ok := work["shadow_color"]; ok {
		delete(work, "shadow_color")
		f.ShadowColour = extractNBTShadowColour(v)
	}

	return f
}

// extractNBTBool handles the NBT convention of representing booleans as
// Byte(0)/Byte(1), treating any other tag type as absent.
func extractNBTBool(work nbt.Compound, key string) *bool {
	v, ok := work[key]
	if !ok {
		return nil
	}
	delete(work, key)
	b, ok := v.(nbt.Byte)
	if !ok {
		return nil
	}
	val := b != 0
	return &val
}

func extractNBTShadowColour(v nbt.Tag) *ShadowColour {
	switch t := v.(type) {
	case nbt.Int:
		x := uint32(int32(t))
		return &ShadowColour{Int: &RGBAInt{
			A: uint8(x >> 24),
			R: uint8(x >> 16),
			G: uint8(x >> 8),
			B: uint8(x),
		}}
	case nbt.List:
		if t.Len() != 4 {
			return nil
		}
		vals := make([]float64, 4)
		for i := 0; i < 4; i++ {
			switch n := t.Get(i).(type) {
			case nbt.Float:
				vals[i] = float64(n)
			case nbt.Double:
				vals[i] = float64(n)
			default:
				return nil
			}
		}
		return &ShadowColour{Float: &RGBAFloat{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}}
	default:
		return nil
	}
}

// ToJavaNBT emits a TextComponent as a Java NBT tag: a bare String tag for
// an unstyled Plain, a List for Recursive, a Compound for Compound, and a
// copy of the wrapped tag (or an empty String if there is none) for Invalid.
func ToJavaNBT(c TextComponent) nbt.Tag {
	switch c.Kind {
	case KindPlain:
		return nbt.String(c.Text)
	case KindRecursive:
		elems := make([]nbt.Tag, 0, len(c.Components))
		for _, child := range c.Components {
			elems = append(elems, ToJavaNBT(child))
		}
		elemType := byte(nbt.TagString)
		if len(elems) > 0 {
			elemType = elems[0].ID()
		}
		return nbt.List{ElementType: elemType, Elements: elems}
	case KindCompound:
		return compoundNodeToNBT(c.Compound)
	case KindInvalid:
		if c.InvalidNBT != nil {
			return cloneTag(c.InvalidNBT)
		}
		return nbt.String("")
	default:
		return nbt.String("")
	}
}

func compoundNodeToNBT(node *CompoundNode) nbt.Tag {
	out := make(nbt.Compound)

	if node.EmptyNode != nil {
		out[""] = ToJavaNBT(*node.EmptyNode)
	}

	if node.ContentType != "" {
		out["type"] = nbt.String(node.ContentType)
	}

	if node.Content != nil {
		encodeNBTContent(node.Content, out)
	}

	if len(node.Children) > 0 {
		elems := make([]nbt.Tag, 0, len(node.Children))
		for _, child := range node.Children {
			elems = append(elems, ToJavaNBT(child))
		}
		out["extra"] = nbt.List{ElementType: elems[0].ID(), Elements: elems}
	}

	encodeNBTFormatting(node.Formatting, out)

	if node.Insertion != nil {
		out["insertion"] = nbt.String(*node.Insertion)
	}
	if node.ClickEvent != nil {
		out["clickEvent"] = anyToNBT(node.ClickEvent)
	}
	if node.HoverEvent != nil {
		out["hoverEvent"] = anyToNBT(node.HoverEvent)
	}

	for k, v := range node.Unhandled {
		out[k] = anyToNBT(v)
	}

	return out
}

func encodeNBTContent(c *Content, out nbt.Compound) {
	switch c.Kind {
	case ContentText:
		out["text"] = nbt.String(c.Text)
	case ContentTranslatable:
		out["translate"] = nbt.String(c.TranslateKey)
		if c.TranslateFallback != nil {
			out["fallback"] = nbt.String(*c.TranslateFallback)
		}
		if len(c.TranslateArgs) > 0 {
			elems := make([]nbt.Tag, 0, len(c.TranslateArgs))
			for _, a := range c.TranslateArgs {
				elems = append(elems, ToJavaNBT(a))
			}
			out["with"] = nbt.List{ElementType: elems[0].ID(), Elements: elems}
		}
	case ContentScoreboard:
		score := make(nbt.Compound)
		if c.ScoreSelector != nil {
			score["name"] = nbt.String(*c.ScoreSelector)
		}
		if c.ScoreObjective != nil {
			score["objective"] = nbt.String(*c.ScoreObjective)
		}
		for k, v := range c.ScoreUnhandled {
			score[k] = anyToNBT(v)
		}
		out["score"] = score
	case ContentEntity:
		if c.EntitySelector != nil {
			out["selector"] = nbt.String(*c.EntitySelector)
		}
		if c.EntitySeparator != nil {
			out["separator"] = ToJavaNBT(*c.EntitySeparator)
		}
	case ContentKeybind:
		if c.KeybindKey != nil {
			out["keybind"] = nbt.String(*c.KeybindKey)
		}
	}
}

func encodeNBTFormatting(f Formatting, out nbt.Compound) {
	if f.Colour != nil {
		out["color"] = nbt.String(f.Colour.Name)
	}
	if f.Font != nil {
		out["font"] = nbt.String(*f.Font)
	}
	putNBTBool(out, "bold", f.Bold)
	putNBTBool(out, "italic", f.Italic)
	putNBTBool(out, "underlined", f.Underlined)
	putNBTBool(out, "strikethrough", f.Strikethrough)
	putNBTBool(out, "obfuscated", f.Obfuscated)

	if f.ShadowColour != nil {
		switch {
		case f.ShadowColour.Int != nil:
			v := f.ShadowColour.Int
			packed := int32(v.A)<<24 | int32(v.R)<<16 | int32(v.G)<<8 | int32(v.B)
			out["shadow_color"] = nbt.Int(packed)
		case f.ShadowColour.Float != nil:
			v := f.ShadowColour.Float
			out["shadow_color"] = nbt.List{
				ElementType: nbt.TagFloat,
				Elements: []nbt.Tag{
					nbt.Float(v.R), nbt.Float(v.G), nbt.Float(v.B), nbt.Float(v.A),
				},
			}
		}
	}
}

func putNBTBool(out nbt.Compound, key string, v *bool) {
	if v == nil {
		return
	}
	if *v {
		out[key] = nbt.Byte(1)
	} else {
		out[key] = nbt.Byte(0)
	}
}

// cloneTag deep-copies a tag so parsers never alias caller-owned data.
func cloneTag(t nbt.Tag) nbt.Tag {
	switch v := t.(type) {
	case nbt.ByteArray:
		out := make(nbt.ByteArray, len(v))
		copy(out, v)
		return out
	case nbt.IntArray:
		out := make(nbt.IntArray, len(v))
		copy(out, v)
		return out
	case nbt.LongArray:
		out := make(nbt.LongArray, len(v))
		copy(out, v)
		return out
	case nbt.List:
		elems := make([]nbt.Tag, len(v.Elements))
		for i, e := range v.Elements {
			elems[i] = cloneTag(e)
		}
		return nbt.List{ElementType: v.ElementType, Elements: elems}
	case nbt.Compound:
		out := make(nbt.Compound, len(v))
		for k, e := range v {
			out[k] = cloneTag(e)
		}
		return out
	default:
		// Byte, Short, Int, Long, Float, Double, String and End are value
		// types with no backing array, so the tag itself is already
		// immutable from the caller's point of view.
		return t
	}
}

// nbtToAny converts an nbt.Tag into a JSON-native value (string, float64,
// bool, nil, []any or map[string]any) so unhandled fields and opaque
// interaction payloads stay wire-format-agnostic.
func nbtToAny(t nbt.Tag) any {
	switch v := t.(type) {
	case nbt.Byte:
		return float64(v)
	case nbt.Short:
		return float64(v)
	case nbt.Int:
		return float64(v)
	case nbt.Long:
		return float64(v)
	case nbt.Float:
		return float64(v)
	case nbt.Double:
		return float64(v)
	case nbt.String:
		return string(v)
	case nbt.ByteArray:
		out := make([]any, len(v))
		for i, b := range v {
			out[i] = float64(b)
		}
		return out
	case nbt.IntArray:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out
	case nbt.LongArray:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out
	case nbt.List:
		out := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			out[i] = nbtToAny(v.Get(i))
		}
		return out
	case nbt.Compound:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = nbtToAny(e)
		}
		return out
	default:
		return nil
	}
}

// anyToNBT is the inverse of nbtToAny, used to re-encode unhandled fields
// and opaque interaction payloads that originated from JSON or from a
// previous nbtToAny call. Integral float64 values round-trip as Int so
// small whole numbers (most NBT use in practice) survive a JSON round-trip
// intact; non-integral values become Double.
func anyToNBT(v any) nbt.Tag {
	switch val := v.(type) {
	case nil:
		return nbt.String("")
	case bool:
		if val {
			return nbt.Byte(1)
		}
		return nbt.Byte(0)
	case string:
		return nbt.String(val)
	case float64:
		if val == float64(int32(val)) {
			return nbt.Int(int32(val))
		}
		return nbt.Double(val)
	case []any:
		elems := make([]nbt.Tag, len(val))
		for i, e := range val {
			elems[i] = anyToNBT(e)
		}
		elemType := byte(nbt.TagString)
		if len(elems) > 0 {
			elemType = elems[0].ID()
		}
		return nbt.List{ElementType: elemType, Elements: elems}
	case map[string]any:
		out := make(nbt.Compound, len(val))
		for k, e := range val {
			out[k] = anyToNBT(e)
		}
		return out
	default:
		return nbt.String("")
	}
}
