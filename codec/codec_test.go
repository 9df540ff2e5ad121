package codec

import (
	"strings"
	"testing"
)

// Every string codec must give back the probe key it was handed.
func TestStringCodecsPreserveKey(t *testing.T) {
	const key = "oat-health-check-16dfb592-dbc2-4727-9fff-34db268fdddd"
	codecs := map[string]Codec[string]{
		"string":   String{},
		"json":     JSON[string]{},
		"cbor":     MustCBOR[string](true),
		"msgpack":  Msgpack[string]{},
		"protobuf": ProtoString{},
	}
	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			b, err := c.Encode(key)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != key {
				t.Fatalf("got %q want %q", got, key)
			}
		})
	}
}

func TestDecodeRejectsForeignBytes(t *testing.T) {
	garbage := []byte{0xff, 0xff, 0xff}
	if _, err := (JSON[string]{}).Decode(garbage); err == nil {
		t.Fatalf("json: expected error")
	}
	if _, err := MustCBOR[string](false).Decode(garbage); err == nil {
		t.Fatalf("cbor: expected error")
	}
	if _, err := (ProtoString{}).Decode(garbage); err == nil {
		t.Fatalf("protobuf: expected error")
	}
}

func TestLimitDecode(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}
	if _, err := c.Decode([]byte("12345")); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected size error, got %v", err)
	}
	if got, err := c.Decode([]byte("1234")); err != nil || got != "1234" {
		t.Fatalf("got %q err=%v", got, err)
	}

	off := Limit[string]{Inner: String{}}
	if _, err := off.Decode([]byte(strings.Repeat("x", 1<<16))); err != nil {
		t.Fatalf("MaxDecode=0 must disable the limit: %v", err)
	}
}
