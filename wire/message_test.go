package wire

import "testing"

func TestEncodeDecodeUpdateRoundTrip(t *testing.T) {
	m := NewUpdate("127.0.1.1", "", map[string]int{"127.0.1.2": 0, "127.0.1.3": 4})
	b, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	u, ok := got.(*Update)
	if !ok {
		t.Fatalf("Decode returned %T, want *Update", got)
	}
	if u.Source != "127.0.1.1" || u.Distances["127.0.1.3"] != 4 {
		t.Errorf("got %+v", u)
	}
}

func TestEncodeDecodeTraceRoundTrip(t *testing.T) {
	m := NewTrace("127.0.1.1", "127.0.1.9")
	b, _ := Encode(m)
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	tr, ok := got.(*Trace)
	if !ok {
		t.Fatalf("Decode returned %T, want *Trace", got)
	}
	if len(tr.Routers) != 1 || tr.Routers[0] != "127.0.1.1" {
		t.Errorf("got routers %v, want [127.0.1.1]", tr.Routers)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	if err == nil {
		t.Errorf("expected an error for malformed JSON")
	}
}

func TestDecodeUnknownTypeSilentlyDropped(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"hello"}`))
	if err != nil {
		t.Errorf("unknown type must not be an error, got %v", err)
	}
	if msg != nil {
		t.Errorf("unknown type must decode to nil, got %v", msg)
	}
}

func TestDecodeMissingRequiredFieldsSilentlyDropped(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"data","source":"127.0.1.1"}`))
	if err != nil {
		t.Errorf("missing destination must not be an error, got %v", err)
	}
	if msg != nil {
		t.Errorf("missing destination must decode to nil, got %v", msg)
	}
}
