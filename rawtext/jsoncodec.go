package rawtext

import "encoding/json"

// FromJavaJSON parses a Java text component JSON payload (RFC 8259) into a
// TextComponent. Input bytes are never retained past the call; decoding
// goes through encoding/json, which already copies everything it returns.
func FromJavaJSON(data []byte) (TextComponent, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return TextComponent{}, err
	}
	return parseJSONComponent(v), nil
}

func parseJSONComponent(v any) TextComponent {
	switch t := v.(type) {
	case string:
		return Plain(t)
	case []any:
		children := make([]TextComponent, 0, len(t))
		for _, e := range t {
			children = append(children, parseJSONComponent(e))
		}
		return Recursive(children...)
	case map[string]any:
		node, ok := parseJSONCompoundNode(t)
		if !ok {
			return TextComponent{Kind: KindInvalid, InvalidJSON: v}
		}
		return Compound(node)
	default:
		return TextComponent{Kind: KindInvalid, InvalidJSON: v}
	}
}

func parseJSONCompoundNode(m map[string]any) (*CompoundNode, bool) {
	work := make(map[string]any, len(m))
	for k, v := range m {
		work[k] = v
	}

	node := &CompoundNode{}

	if s, ok := work["type"].(string); ok {
		node.ContentType = s
	}
	delete(work, "type")

	node.Content = extractJSONContent(node.ContentType, work)

	if extra, ok := work["extra"]; ok {
		delete(work, "extra")
		if list, ok := extra.([]any); ok {
			for _, e := range list {
				node.Children = append(node.Children, parseJSONComponent(e))
			}
		}
	}

	node.Formatting = extractJSONFormatting(work)

	if ins, ok := work["insertion"].(string); ok {
		node.Insertion = &ins
	}
	delete(work, "insertion")

	if click, ok := work["clickEvent"]; ok {
		delete(work, "clickEvent")
		node.ClickEvent = click
	}
	if hover, ok := work["hoverEvent"]; ok {
		delete(work, "hoverEvent")
		node.HoverEvent = hover
	}

	if len(work) > 0 {
		node.Unhandled = work
	}

	return node, true
}

func extractJSONContent(declaredType string, work map[string]any) *Content {
	type extractor struct {
		name string
		fn   func(map[string]any) *Content
	}
	chain := []extractor{
		{"text", extractJSONText},
		{"translatable", extractJSONTranslatable},
		{"score", extractJSONScoreboard},
		{"selector", extractJSONEntity},
		{"keybind", extractJSONKeybind},
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

func extractJSONText(work map[string]any) *Content {
	s, ok := work["text"].(string)
	if !ok {
		return nil
	}
	delete(work, "text")
	return &Content{Kind: ContentText, Text: s}
}

func extractJSONTranslatable(work map[string]any) *Content {
	s, ok := work["translate"].(string)
	if !ok {
		return nil
	}
	delete(work, "translate")

	c := &Content{Kind: ContentTranslatable, TranslateKey: s}

	if f, ok := work["fallback"].(string); ok {
		delete(work, "fallback")
		c.TranslateFallback = &f
	}

	if a, ok := work["with"]; ok {
		delete(work, "with")
		if list, ok := a.([]any); ok {
			for _, e := range list {
				c.TranslateArgs = append(c.TranslateArgs, parseJSONComponent(e))
			}
		}
	}

	return c
}

func extractJSONScoreboard(work map[string]any) *Content {
	v, ok := work["score"]
	if !ok {
		return nil
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	delete(work, "score")

	subWork := make(map[string]any, len(sub))
	for k, v := range sub {
		subWork[k] = v
	}

	c := &Content{Kind: ContentScoreboard}
	if n, ok := subWork["name"].(string); ok {
		delete(subWork, "name")
		c.ScoreSelector = &n
	}
	if o, ok := subWork["objective"].(string); ok {
		delete(subWork, "objective")
		c.ScoreObjective = &o
	}
	if len(subWork) > 0 {
		c.ScoreUnhandled = subWork
	}
	return c
}

func extractJSONEntity(work map[string]any) *Content {
	sel, ok := work["selector"].(string)
	if !ok {
		return nil
	}
	delete(work, "selector")

	c := &Content{Kind: ContentEntity, EntitySelector: &sel}

	if sep, ok := work["separator"]; ok {
		delete(work, "separator")
		comp := parseJSONComponent(sep)
		c.EntitySeparator = &comp
	}
	return c
}

func extractJSONKeybind(work map[string]any) *Content {
	key, ok := work["keybind"].(string)
	if !ok {
		return nil
	}
	delete(work, "keybind")
	return &Content{Kind: ContentKeybind, KeybindKey: &key}
}

func extractJSONFormatting(work map[string]any) Formatting {
	var f Formatting

	if s, ok := work["color"].(string); ok {
		delete(work, "color")
		c := colourFromName(JavaPalette, s)
		f.Colour = &c
	}
	if s, ok := work["font"].(string); ok {
		delete(work, "font")
		f.Font = &s
	}

	f.Bold = extractJSONBool(work, "bold")
	f.Italic = extractJSONBool(work, "italic")
	f.Underlined = extractJSONBool(work, "underlined")
	f.Strikethrough = extractJSONBool(work, "strikethrough")
	f.Obfuscated = extractJSONBool(work, "obfuscated")

	if v, ok := work["shadow_color"]; ok {
		delete(work, "shadow_color")
		f.ShadowColour = extractJSONShadowColour(v)
	}

	return f
}

func extractJSONBool(work map[string]any, key string) *bool {
	v, ok := work[key]
	if !ok {
		return nil
	}
	delete(work, key)
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

func extractJSONShadowColour(v any) *ShadowColour {
	switch t := v.(type) {
	case float64:
		x := uint32(int64(t))
		return &ShadowColour{Int: &RGBAInt{
			A: uint8(x >> 24),
			R: uint8(x >> 16),
			G: uint8(x >> 8),
			B: uint8(x),
		}}
	case []any:
		if len(t) != 4 {
			return nil
		}
		vals := make([]float64, 4)
		for i, e := range t {
			f, ok := e.(float64)
			if !ok {
				return nil
			}
			vals[i] = f
		}
		return &ShadowColour{Float: &RGBAFloat{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}}
	default:
		return nil
	}
}

// ToJavaJSON serialises a TextComponent to its Java JSON wire form.
func ToJavaJSON(c TextComponent) ([]byte, error) {
	return json.Marshal(componentToJSON(c))
}

func componentToJSON(c TextComponent) any {
	switch c.Kind {
	case KindPlain:
		return c.Text
	case KindRecursive:
		out := make([]any, 0, len(c.Components))
		for _, child := range c.Components {
			out = append(out, componentToJSON(child))
		}
		return out
	case KindCompound:
		return compoundNodeToJSON(c.Compound)
	case KindInvalid:
		if c.InvalidJSON != nil {
			return c.InvalidJSON
		}
		return ""
	default:
		return ""
	}
}

func compoundNodeToJSON(node *CompoundNode) map[string]any {
	out := make(map[string]any)

	if node.ContentType != "" {
		out["type"] = node.ContentType
	}

	if node.Content != nil {
		encodeJSONContent(node.Content, out)
	}

	if len(node.Children) > 0 {
		extra := make([]any, 0, len(node.Children))
		for _, child := range node.Children {
			extra = append(extra, componentToJSON(child))
		}
		out["extra"] = extra
	}

	encodeJSONFormatting(node.Formatting, out)

	if node.Insertion != nil {
		out["insertion"] = *node.Insertion
	}
	if node.ClickEvent != nil {
		out["clickEvent"] = node.ClickEvent
	}
	if node.HoverEvent != nil {
		out["hoverEvent"] = node.HoverEvent
	}

	for k, v := range node.Unhandled {
		out[k] = v
	}

	return out
}

func encodeJSONContent(c *Content, out map[string]any) {
	switch c.Kind {
	case ContentText:
		out["text"] = c.Text
	case ContentTranslatable:
		out["translate"] = c.TranslateKey
		if c.TranslateFallback != nil {
			out["fallback"] = *c.TranslateFallback
		}
		if len(c.TranslateArgs) > 0 {
			with := make([]any, 0, len(c.TranslateArgs))
			for _, a := range c.TranslateArgs {
				with = append(with, componentToJSON(a))
			}
			out["with"] = with
		}
	case ContentScoreboard:
		score := make(map[string]any)
		if c.ScoreSelector != nil {
			score["name"] = *c.ScoreSelector
		}
		if c.ScoreObjective != nil {
			score["objective"] = *c.ScoreObjective
		}
		for k, v := range c.ScoreUnhandled {
			score[k] = v
		}
		out["score"] = score
	case ContentEntity:
		if c.EntitySelector != nil {
			out["selector"] = *c.EntitySelector
		}
		if c.EntitySeparator != nil {
			out["separator"] = componentToJSON(*c.EntitySeparator)
		}
	case ContentKeybind:
		if c.KeybindKey != nil {
			out["keybind"] = *c.KeybindKey
		}
	}
}

func encodeJSONFormatting(f Formatting, out map[string]any) {
	if f.Colour != nil {
		out["color"] = f.Colour.Name
	}
	if f.Font != nil {
		out["font"] = *f.Font
	}
	putJSONBool(out, "bold", f.Bold)
	putJSONBool(out, "italic", f.Italic)
	putJSONBool(out, "underlined", f.Underlined)
	putJSONBool(out, "strikethrough", f.Strikethrough)
	putJSONBool(out, "obfuscated", f.Obfuscated)

	if f.ShadowColour != nil {
		switch {
		case f.ShadowColour.Int != nil:
			v := f.ShadowColour.Int
			packed := int64(v.A)<<24 | int64(v.R)<<16 | int64(v.G)<<8 | int64(v.B)
			out["shadow_color"] = float64(packed)
		case f.ShadowColour.Float != nil:
			v := f.ShadowColour.Float
			out["shadow_color"] = []any{v.R, v.G, v.B, v.A}
		}
	}
}

func putJSONBool(out map[string]any, key string, v *bool) {
	if v == nil {
		return
	}
	out[key] = *v
}
