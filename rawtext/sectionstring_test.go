package rawtext_test

import (
	"testing"

	"github.com/go-mclib/rawtext/nbt"
	"github.com/go-mclib/rawtext/rawtext"
)

const wantBedrockFormatting = "§oH§1e§2l§3l§4§lo§r§5§oW§6o§7r§8§kl§r§9§od"
const wantJavaFormatting = "§oH§1e§2§nl§r§3§ol§4§lo§r§5§oW§6§mo§r§7§or§8§kl§r§9§od"

func TestToBedrockSectionStringHelloWorld(t *testing.T) {
	c := rawtext.FromJavaNBT(nbt.String("Hello World"))
	if got := rawtext.ToBedrockSectionString(c); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestToBedrockSectionStringHelloWorldList(t *testing.T) {
	in := nbt.List{ElementType: nbt.TagString, Elements: []nbt.Tag{nbt.String("Hello "), nbt.String("World")}}
	c := rawtext.FromJavaNBT(in)
	if got := rawtext.ToBedrockSectionString(c); got != "Hello World" {
		t.Errorf("got %q, want %q", got, "Hello World")
	}
}

func TestToBedrockSectionStringFormattingList(t *testing.T) {
	c := rawtext.FromJavaNBT(javaFormattingListNBT())
	if got := rawtext.ToBedrockSectionString(c); got != wantBedrockFormatting {
		t.Errorf("got %q, want %q", got, wantBedrockFormatting)
	}
}

func TestToJavaSectionStringFormattingList(t *testing.T) {
	c := rawtext.FromJavaNBT(javaFormattingListNBT())
	if got := rawtext.ToJavaSectionString(c); got != wantJavaFormatting {
		t.Errorf("got %q, want %q", got, wantJavaFormatting)
	}
}

// javaFormattingCompoundNBT is the equivalent nested-extra form of
// javaFormattingListNBT: same visual result, different tree shape.
func javaFormattingCompoundNBT() nbt.Compound {
	list := javaFormattingListNBT()
	head := list.Elements[0].(nbt.Compound)
	rest := list.Elements[1:]

	out := nbt.Compound{}
	for k, v := range head {
		out[k] = v
	}
	out["extra"] = nbt.List{ElementType: nbt.TagCompound, Elements: rest}
	return out
}

func TestToBedrockSectionStringFormattingCompound(t *testing.T) {
	c := rawtext.FromJavaNBT(javaFormattingCompoundNBT())
	if got := rawtext.ToBedrockSectionString(c); got != wantBedrockFormatting {
		t.Errorf("got %q, want %q", got, wantBedrockFormatting)
	}
}

func TestToJavaSectionStringFormattingCompound(t *testing.T) {
	c := rawtext.FromJavaNBT(javaFormattingCompoundNBT())
	if got := rawtext.ToJavaSectionString(c); got != wantJavaFormatting {
		t.Errorf("got %q, want %q", got, wantJavaFormatting)
	}
}

func TestBedrockSectionStringCanonicalization(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Hello World", "Hello World"},
		{wantBedrockFormatting, wantBedrockFormatting},
		{"§oH§1e§2l§r§3§ol§4§lo§r§5§oW§6o§r§7§or§8§kl§r§9§od", wantBedrockFormatting},
	}
	for _, tc := range cases {
		c, _ := rawtext.FromBedrockSectionString(tc.in, false)
		if got := rawtext.ToBedrockSectionString(c); got != tc.want {
			t.Errorf("canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromJavaSectionStringEmpty(t *testing.T) {
	c, _ := rawtext.FromJavaSectionString("", false)
	if got := rawtext.ToBedrockSectionString(c); got != "" {
		t.Errorf("bedrock = %q, want empty", got)
	}
	if got := rawtext.ToJavaSectionString(c); got != "" {
		t.Errorf("java = %q, want empty", got)
	}
	nbtTag := rawtext.ToJavaNBT(c)
	if s, ok := nbtTag.(nbt.String); !ok || s != "" {
		t.Errorf("nbt = %#v, want empty String", nbtTag)
	}
}

func TestFromJavaSectionStringPlain(t *testing.T) {
	c, _ := rawtext.FromJavaSectionString("Hello World", false)
	if c.Kind != rawtext.KindPlain {
		t.Fatalf("got %+v, want Plain", c)
	}
	if got := rawtext.ToBedrockSectionString(c); got != "Hello World" {
		t.Errorf("bedrock = %q", got)
	}
	if got := rawtext.ToJavaSectionString(c); got != "Hello World" {
		t.Errorf("java = %q", got)
	}
}

func TestFromJavaSectionStringTwoRuns(t *testing.T) {
	c, _ := rawtext.FromJavaSectionString("§4Hello§1World", false)

	if got := rawtext.ToBedrockSectionString(c); got != "§4Hello§1World" {
		t.Errorf("bedrock = %q", got)
	}
	if got := rawtext.ToJavaSectionString(c); got != "§4Hello§1World" {
		t.Errorf("java = %q", got)
	}

	if c.Kind != rawtext.KindCompound || c.Compound.Content != nil || len(c.Compound.Children) != 2 {
		t.Fatalf("shape = %+v", c)
	}

	tag := rawtext.ToJavaNBT(c).(nbt.Compound)
	extra, ok := tag["extra"].(nbt.List)
	if !ok || extra.Len() != 2 {
		t.Fatalf("extra = %#v", tag["extra"])
	}
	first := extra.Get(0).(nbt.Compound)
	if first.GetString("text") != "Hello" || first.GetString("color") != "dark_red" {
		t.Errorf("first = %#v", first)
	}
	second := extra.Get(1).(nbt.Compound)
	if second.GetString("text") != "World" || second.GetString("color") != "dark_blue" {
		t.Errorf("second = %#v", second)
	}
	if _, hasText := tag["text"]; hasText {
		t.Errorf("top-level text should be absent, got %#v", tag["text"])
	}
}

func TestFromJavaSectionStringMultiStyleStickyItalic(t *testing.T) {
	c, _ := rawtext.FromJavaSectionString(wantJavaFormatting, false)

	if got := rawtext.ToBedrockSectionString(c); got != wantBedrockFormatting {
		t.Errorf("bedrock = %q, want %q", got, wantBedrockFormatting)
	}
	if got := rawtext.ToJavaSectionString(c); got != wantJavaFormatting {
		t.Errorf("java = %q, want %q", got, wantJavaFormatting)
	}

	tag := rawtext.ToJavaNBT(c).(nbt.Compound)
	extra := tag["extra"].(nbt.List)
	if extra.Len() != 10 {
		t.Fatalf("extra len = %d, want 10", extra.Len())
	}

	first := extra.Get(0).(nbt.Compound)
	if first.GetString("text") != "H" || first.GetByte("italic") != 1 {
		t.Errorf("first = %#v", first)
	}
	if _, hasColor := first["color"]; hasColor {
		t.Errorf("first should have no color key, got %v", first["color"])
	}

	second := extra.Get(1).(nbt.Compound)
	if second.GetString("text") != "e" || second.GetString("color") != "dark_blue" || second.GetByte("italic") != 1 {
		t.Errorf("second = %#v", second)
	}

	third := extra.Get(2).(nbt.Compound)
	if third.GetString("color") != "dark_green" || third.GetByte("italic") != 1 || third.GetByte("underlined") != 1 {
		t.Errorf("third = %#v", third)
	}

	last := extra.Get(9).(nbt.Compound)
	if last.GetString("text") != "d" || last.GetString("color") != "blue" || last.GetByte("italic") != 1 {
		t.Errorf("last = %#v", last)
	}
}

func TestToSectionStringJoinsMultipleComponentsWithNewline(t *testing.T) {
	a := rawtext.Plain("line one")
	b := rawtext.Plain("line two")
	if got := rawtext.ToJavaSectionString(a, b); got != "line one\nline two" {
		t.Errorf("got %q", got)
	}
}

func TestFromJavaSectionStringSplitNewline(t *testing.T) {
	_, lines := rawtext.FromJavaSectionString("one\ntwo\nthree", true)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, want := range []string{"one", "two", "three"} {
		if lines[i].Text != want {
			t.Errorf("line %d = %q, want %q", i, lines[i].Text, want)
		}
	}
}
