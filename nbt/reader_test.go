package nbt_test

import (
	"strings"
	"testing"

	"github.com/go-mclib/rawtext/nbt"
)

func TestEncodeDecodePrimitives(t *testing.T) {
	tests := []struct {
		name string
		tag  nbt.Tag
	}{
		{"byte", nbt.Byte(42)},
		{"byte negative", nbt.Byte(-1)},
		{"short", nbt.Short(12345)},
		{"int", nbt.Int(123456789)},
		{"long", nbt.Long(9223372036854775807)},
		{"float", nbt.Float(3.14159)},
		{"double", nbt.Double(3.141592653589793)},
		{"string", nbt.String("Hello, NBT!")},
		{"string unicode", nbt.String("日本語テスト")},
		{"byte array", nbt.ByteArray{1, 2, 3, 4, 5}},
		{"int array", nbt.IntArray{1, 2, 3, 4, 5}},
		{"long array", nbt.LongArray{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compound := nbt.Compound{"value": tt.tag}

			data, err := nbt.EncodeNetwork(compound)
			if err != nil {
				t.Fatalf("EncodeNetwork() error = %v", err)
			}

			decoded, err := nbt.DecodeNetwork(data)
			if err != nil {
				t.Fatalf("DecodeNetwork() error = %v", err)
			}

			c, ok := decoded.(nbt.Compound)
			if !ok {
				t.Fatalf("expected Compound, got %T", decoded)
			}

			got := c["value"]
			if got.ID() != tt.tag.ID() {
				t.Errorf("tag type = %s, want %s", nbt.TagName(got.ID()), nbt.TagName(tt.tag.ID()))
			}
		})
	}
}

func TestEncodeDecodeFileRoundTrip(t *testing.T) {
	compound := nbt.Compound{
		"name":  nbt.String("test"),
		"value": nbt.Int(42),
	}

	data, err := nbt.EncodeFile(compound, "root")
	if err != nil {
		t.Fatalf("EncodeFile() error = %v", err)
	}

	decoded, rootName, err := nbt.DecodeFile(data)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if rootName != "root" {
		t.Errorf("rootName = %q, want %q", rootName, "root")
	}

	c, ok := decoded.(nbt.Compound)
	if !ok {
		t.Fatalf("expected Compound, got %T", decoded)
	}
	if got := c.GetString("name"); got != "test" {
		t.Errorf("name = %q, want %q", got, "test")
	}
	if got := c.GetInt("value"); got != 42 {
		t.Errorf("value = %d, want %d", got, 42)
	}
}

func TestNestedCompoundAndList(t *testing.T) {
	inner := nbt.Compound{"x": nbt.Int(1)}
	list := nbt.List{ElementType: nbt.TagCompound, Elements: []nbt.Tag{inner, nbt.Compound{"x": nbt.Int(2)}}}
	root := nbt.Compound{"items": list}

	data, err := nbt.EncodeNetwork(root)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}

	decoded, err := nbt.DecodeNetwork(data)
	if err != nil {
		t.Fatalf("DecodeNetwork() error = %v", err)
	}

	c := decoded.(nbt.Compound)
	gotList := c.GetList("items")
	if gotList.Len() != 2 {
		t.Fatalf("list len = %d, want 2", gotList.Len())
	}
	first := gotList.Get(0).(nbt.Compound)
	if first.GetInt("x") != 1 {
		t.Errorf("first.x = %d, want 1", first.GetInt("x"))
	}
}

func TestMaxDepthExceeded(t *testing.T) {
	var tag nbt.Tag = nbt.Compound{"v": nbt.Int(0)}
	for i := 0; i < nbt.MaxDepth+10; i++ {
		tag = nbt.Compound{"v": tag}
	}

	data, err := nbt.EncodeNetwork(tag.(nbt.Compound))
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}

	_, err = nbt.DecodeNetwork(data, nbt.WithMaxDepth(nbt.MaxDepth))
	if err == nil {
		t.Fatal("expected error for exceeding max depth, got nil")
	}
}

func TestMaxBytesExceeded(t *testing.T) {
	root := nbt.Compound{"value": nbt.String(strings.Repeat("x", 4096))}

	data, err := nbt.EncodeNetwork(root)
	if err != nil {
		t.Fatalf("EncodeNetwork() error = %v", err)
	}

	_, err = nbt.DecodeNetwork(data, nbt.WithMaxBytes(16))
	if err == nil {
		t.Fatal("expected error for exceeding max bytes, got nil")
	}
}
