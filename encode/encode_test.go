package encode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/signadot/format-json/ir"
)

func obj(kvs ...any) *ir.Node {
	res := make([]ir.KeyVal, 0, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		res = append(res, ir.KeyVal{Key: ir.FromString(kvs[i].(string)), Val: kvs[i+1].(*ir.Node)})
	}
	return ir.FromKeyVals(res)
}

func arr(vs ...*ir.Node) *ir.Node {
	return ir.FromSlice(vs)
}

func TestEncodeCanonical(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null\n"},
		{"true", ir.FromBool(true), "true\n"},
		{"false", ir.FromBool(false), "false\n"},
		{"number keeps text", ir.FromNumber("1.50e+3"), "1.50e+3\n"},
		{"string", ir.FromString("hi"), `"hi"` + "\n"},
		{"empty object", obj(), "{}\n"},
		{"empty array", arr(), "[]\n"},
		{"sorted keys", obj("b", ir.FromInt(1), "a", ir.FromInt(2)), `{"a": 2, "b": 1}` + "\n"},
		{"array of objects", arr(obj(), obj("a", ir.FromInt(1))), `[{}, {"a": 1}]` + "\n"},
		{
			"nested sorting",
			obj("z", obj("y", ir.Null(), "x", arr(ir.FromBool(true), ir.FromString("s"))), "a", arr()),
			`{"a": [], "z": {"x": [true, "s"], "y": null}}` + "\n",
		},
		{
			"byte order keys",
			obj("b", ir.FromInt(1), "B", ir.FromInt(2), "_", ir.FromInt(3), "é", ir.FromInt(4)),
			`{"B": 2, "_": 3, "b": 1, "é": 4}` + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.node, buf, Canonical()...); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDefaultsAreCanonical(t *testing.T) {
	node := obj("b", arr(ir.FromInt(1), obj("d", ir.Null(), "c", ir.FromString("x"))), "a", ir.FromBool(false))
	def := bytes.NewBuffer(nil)
	if err := Encode(node, def); err != nil {
		t.Fatal(err)
	}
	canon := bytes.NewBuffer(nil)
	if err := Encode(node, canon, Canonical()...); err != nil {
		t.Fatal(err)
	}
	if def.String() != canon.String() {
		t.Errorf("default %q != canonical %q", def.String(), canon.String())
	}
}

func TestEncodeStrings(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", `"plain"`},
		{`quo"te`, `"quo\"te"`},
		{`back\slash`, `"back\\slash"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x1f", `"\u0000\u001f"`},
		{"</script>&", `"</script>&"`},
		{"héllo ☃ 😀", `"héllo ☃ 😀"`},
		{"\x7f", "\"\x7f\""},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.want {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEncodeKeyQuoting(t *testing.T) {
	node := obj("a\"b", ir.FromInt(1))
	if got, want := MustString(node), `{"a\"b": 1}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeAfterColon(t *testing.T) {
	node := obj("a", obj("b", ir.FromInt(1)))
	tests := []struct {
		n    int
		want string
	}{
		{0, `{"a":{"b":1}}`},
		{1, `{"a": {"b": 1}}`},
		{3, `{"a":   {"b":   1}}`},
		{-1, `{"a":{"b":1}}`},
	}
	for _, tt := range tests {
		buf := bytes.NewBuffer(nil)
		if err := Encode(node, buf, EncodeAfterColon(tt.n)); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tt.want+"\n" {
			t.Errorf("after colon %d: got %q want %q", tt.n, got, tt.want)
		}
	}
}

func TestEncodeUnsorted(t *testing.T) {
	node := obj("b", ir.FromInt(1), "a", ir.FromInt(2))
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeSortKeys(false)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `{"b": 1, "a": 2}`+"\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeNoWrap(t *testing.T) {
	vals := make([]*ir.Node, 200)
	for i := range vals {
		vals[i] = obj("key", ir.FromString("a fairly long string value"))
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(arr(vals...), buf, Canonical()...); err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("\n")); n != 1 {
		t.Errorf("expected a single line, got %d newlines", n)
	}
}

func TestEncodeWrap(t *testing.T) {
	node := obj(
		"alpha", arr(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
		"beta", ir.FromString("xxxxxxxxxxxx"),
		"gamma", obj("long", arr(ir.FromString("aaaaaaaa"), ir.FromString("bbbbbbbb"))),
		"delta", obj(),
	)
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWrap(20)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "alpha": [1, 2, 3],
  "beta": "xxxxxxxxxxxx",
  "delta": {},
  "gamma": {
    "long": [
      "aaaaaaaa",
      "bbbbbbbb"
    ]
  }
}
`
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	buf.Reset()
	if err := Encode(node, buf, EncodeWrap(1000)); err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("\n")); n != 1 {
		t.Errorf("wide wrap: expected one line, got %q", buf.String())
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
	}{
		{"nil", nil},
		{"number without text", &ir.Node{Type: ir.NumberType}},
		{"mismatched object", &ir.Node{Type: ir.ObjectType, Values: []*ir.Node{ir.Null()}}},
		{"non string key", &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{ir.FromInt(1)}, Values: []*ir.Node{ir.Null()}}},
		{"nested bad", arr(&ir.Node{Type: ir.NumberType})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.node, bytes.NewBuffer(nil))
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("expected ErrEncoding, got %v", err)
			}
		})
	}
}
