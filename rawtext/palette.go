package rawtext

// PaletteEntry binds one colour code character to an RGB value and its
// human-readable name.
type PaletteEntry struct {
	Code    byte
	Name    string
	R, G, B uint8
}

// Palette is an ordered colour table. Order matters: FindClosest breaks ties
// by picking the earliest entry, so callers must not reorder a palette they
// didn't build themselves.
type Palette []PaletteEntry

// ByCode returns the entry for a given code character.
func (p Palette) ByCode(code byte) (PaletteEntry, bool) {
	for _, e := range p {
		if e.Code == code {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// ByName returns the entry for a given colour name.
func (p Palette) ByName(name string) (PaletteEntry, bool) {
	for _, e := range p {
		if e.Name == name {
			return e, true
		}
	}
	return PaletteEntry{}, false
}

// FindClosest returns the palette entry minimising the Manhattan distance in
// RGB space to (r, g, b). Ties are broken by declaration order: the first
// minimal entry wins.
func (p Palette) FindClosest(r, g, b uint8) PaletteEntry {
	best := p[0]
	bestDist := manhattan(r, g, b, best.R, best.G, best.B)
	for _, e := range p[1:] {
		d := manhattan(r, g, b, e.R, e.G, e.B)
		if d < bestDist {
			best = e
			bestDist = d
		}
	}
	return best
}

func manhattan(r1, g1, b1, r2, g2, b2 uint8) int {
	return absInt(int(r1)-int(r2)) + absInt(int(g1)-int(g2)) + absInt(int(b1)-int(b2))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// JavaPalette is the 16-entry Java Edition colour table, indexed by the
// section codes 0-9a-f.
var JavaPalette = Palette{
	{Code: '0', Name: "black", R: 0x00, G: 0x00, B: 0x00},
	{Code: '1', Name: "dark_blue", R: 0x00, G: 0x00, B: 0xAA},
	{Code: '2', Name: "dark_green", R: 0x00, G: 0xAA, B: 0x00},
	{Code: '3', Name: "dark_aqua", R: 0x00, G: 0xAA, B: 0xAA},
	{Code: '4', Name: "dark_red", R: 0xAA, G: 0x00, B: 0x00},
	{Code: '5', Name: "dark_purple", R: 0xAA, G: 0x00, B: 0xAA},
	{Code: '6', Name: "gold", R: 0xFF, G: 0xAA, B: 0x00},
	{Code: '7', Name: "gray", R: 0xAA, G: 0xAA, B: 0xAA},
	{Code: '8', Name: "dark_gray", R: 0x55, G: 0x55, B: 0x55},
	{Code: '9', Name: "blue", R: 0x55, G: 0x55, B: 0xFF},
	{Code: 'a', Name: "green", R: 0x55, G: 0xFF, B: 0x55},
	{Code: 'b', Name: "aqua", R: 0x55, G: 0xFF, B: 0xFF},
	{Code: 'c', Name: "red", R: 0xFF, G: 0x55, B: 0x55},
	{Code: 'd', Name: "light_purple", R: 0xFF, G: 0x55, B: 0xFF},
	{Code: 'e', Name: "yellow", R: 0xFF, G: 0xFF, B: 0x55},
	{Code: 'f', Name: "white", R: 0xFF, G: 0xFF, B: 0xFF},
}

// BedrockPalette is the 28-entry Bedrock Edition colour table: the same 16
// base colours plus Minecoin gold and the material tones Bedrock added for
// armour trim and map colouring. Bedrock has no underline/strikethrough
// style, so 'm' and 'n' are free to carry colours instead.
var BedrockPalette = Palette{
	{Code: '0', Name: "black", R: 0x00, G: 0x00, B: 0x00},
	{Code: '1', Name: "dark_blue", R: 0x00, G: 0x00, B: 0xAA},
	{Code: '2', Name: "dark_green", R: 0x00, G: 0xAA, B: 0x00},
	{Code: '3', Name: "dark_aqua", R: 0x00, G: 0xAA, B: 0xAA},
	{Code: '4', Name: "dark_red", R: 0xAA, G: 0x00, B: 0x00},
	{Code: '5', Name: "dark_purple", R: 0xAA, G: 0x00, B: 0xAA},
	{Code: '6', Name: "gold", R: 0xFF, G: 0xAA, B: 0x00},
	{Code: '7', Name: "gray", R: 0xAA, G: 0xAA, B: 0xAA},
	{Code: '8', Name: "dark_gray", R: 0x55, G: 0x55, B: 0x55},
	{Code: '9', Name: "blue", R: 0x55, G: 0x55, B: 0xFF},
	{Code: 'a', Name: "green", R: 0x55, G: 0xFF, B: 0x55},
	{Code: 'b', Name: "aqua", R: 0x55, G: 0xFF, B: 0xFF},
	{Code: 'c', Name: "red", R: 0xFF, G: 0x55, B: 0x55},
	{Code: 'd', Name: "light_purple", R: 0xFF, G: 0x55, B: 0xFF},
	{Code: 'e', Name: "yellow", R: 0xFF, G: 0xFF, B: 0x55},
	{Code: 'f', Name: "white", R: 0xFF, G: 0xFF, B: 0xFF},
	{Code: 'g', Name: "minecoin_gold", R: 0xDD, G: 0xD6, B: 0x05},
	{Code: 'h', Name: "material_quartz", R: 0xE3, G: 0xD4, B: 0xD1},
	{Code: 'i', Name: "material_iron", R: 0xCE, G: 0xCA, B: 0xCA},
	{Code: 'j', Name: "material_netherite", R: 0x44, G: 0x3A, B: 0x3B},
	{Code: 'm', Name: "material_redstone", R: 0x97, G: 0x16, B: 0x07},
	{Code: 'n', Name: "material_copper", R: 0xB4, G: 0x68, B: 0x4D},
	{Code: 'p', Name: "material_gold", R: 0xDE, G: 0xB1, B: 0x2D},
	{Code: 'q', Name: "material_emerald", R: 0x47, G: 0xA0, B: 0x36},
	{Code: 's', Name: "material_diamond", R: 0x2C, G: 0xBA, B: 0xA8},
	{Code: 't', Name: "material_lapis", R: 0x21, G: 0x49, B: 0x7B},
	{Code: 'u', Name: "material_amethyst", R: 0x9A, G: 0x5C, B: 0xC6},
	{Code: 'v', Name: "material_resin", R: 0xFA, G: 0x8A, B: 0x3D},
}

// colourFromName resolves a declared colour name (or "#RRGGBB" hex literal)
// to a Colour, preserving the original name string even when parsing fails
// or the name is unrecognised. Ungrounded names fall back to (0,0,0), per
// the "tolerate everything, destroy nothing" error-handling design: the
// original string always survives the round trip even if its colour
// couldn't be resolved.
func colourFromName(pal Palette, name string) Colour {
	if len(name) == 7 && name[0] == '#' {
		if r, g, b, ok := parseHexColour(name); ok {
			return Colour{Name: name, R: r, G: g, B: b}
		}
		return Colour{Name: name}
	}
	if entry, ok := pal.ByName(name); ok {
		return Colour{Name: name, R: entry.R, G: entry.G, B: entry.B}
	}
	return Colour{Name: name}
}

func parseHexColour(s string) (r, g, b uint8, ok bool) {
	v, err := parseHexByte(s[1:3])
	if err != nil {
		return 0, 0, 0, false
	}
	r = v
	v, err = parseHexByte(s[3:5])
	if err != nil {
		return 0, 0, 0, false
	}
	g = v
	v, err = parseHexByte(s[5:7])
	if err != nil {
		return 0, 0, 0, false
	}
	b = v
	return r, g, b, true
}

func parseHexByte(s string) (uint8, error) {
	hi, err := hexDigit(s[0])
	if err != nil {
		return 0, err
	}
	lo, err := hexDigit(s[1])
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}

func hexDigit(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errInvalidHexDigit
	}
}
