package value

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range []Kind{KindNumber, KindString, KindBool, KindList, KindStruct} {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("tensor"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestKind_Scalar(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindNumber, true},
		{KindString, true},
		{KindBool, true},
		{KindList, false},
		{KindStruct, false},
		{KindInvalid, false},
	}
	for _, tt := range tests {
		if got := tt.kind.Scalar(); got != tt.want {
			t.Errorf("%v.Scalar() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"integer", `15`, KindNumber},
		{"float", `0.25`, KindNumber},
		{"string", `"adam"`, KindString},
		{"bool", `true`, KindBool},
		{"list", `[1, "a", false]`, KindList},
		{"struct", `{"lr": 0.1, "layers": [1, 2]}`, KindStruct},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("kind = %v, want %v", v.Kind(), tt.kind)
			}
		})
	}
}

func TestUnmarshalJSON_Payloads(t *testing.T) {
	var kvs []KeyValue
	in := `[{"key":"loss","value":0.5},{"key":"opt","value":"sgd"},{"key":"tags","value":["a","b"]}]`
	if err := json.Unmarshal([]byte(in), &kvs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kvs) != 3 {
		t.Fatalf("len = %d, want 3", len(kvs))
	}
	if kvs[0].Value.Num() != 0.5 {
		t.Errorf("loss = %v", kvs[0].Value.Num())
	}
	if kvs[1].Value.Str() != "sgd" {
		t.Errorf("opt = %q", kvs[1].Value.Str())
	}
	if items := kvs[2].Value.Items(); len(items) != 2 || items[1].Str() != "b" {
		t.Errorf("tags = %v", kvs[2].Value)
	}
}

func TestUnmarshalJSON_NullRejected(t *testing.T) {
	tests := []string{`null`, `[1, null]`, `{"a": null}`}
	for _, in := range tests {
		var v Value
		err := json.Unmarshal([]byte(in), &v)
		if err == nil {
			t.Errorf("%s: expected error", in)
			continue
		}
		if !strings.Contains(err.Error(), "null") {
			t.Errorf("%s: error = %q", in, err)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	v := List(Number(1), String("x"), Bool(true))
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `[1,"x",true]` {
		t.Errorf("got %s", b)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Value
		wantErr bool
	}{
		{"number", Number(1), false},
		{"infinity", Number(math.Inf(1)), true},
		{"large", Number(math.MaxFloat64), false},
		{"nan", Number(math.NaN()), true},
		{"nested nan", List(Number(1), Number(math.NaN())), true},
		{"struct nan", Struct(map[string]Value{"x": Number(math.NaN())}), true},
		{"zero", Value{}, true},
		{"string", String(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromInterface_Integers(t *testing.T) {
	for _, x := range []any{int(3), int32(3), int64(3), float32(3)} {
		v, err := FromInterface(x)
		if err != nil {
			t.Fatalf("%T: %v", x, err)
		}
		if v.Kind() != KindNumber || v.Num() != 3 {
			t.Errorf("%T: got %v", x, v)
		}
	}
	if _, err := FromInterface(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestList_CopiesInput(t *testing.T) {
	items := []Value{Number(1)}
	v := List(items...)
	items[0] = Number(2)
	if v.Items()[0].Num() != 1 {
		t.Error("List must not alias the caller slice")
	}
}

func TestKeyValue_Validate(t *testing.T) {
	if err := (KeyValue{Value: Number(1)}).Validate(); err == nil {
		t.Error("expected error for empty key")
	}
	if err := (KeyValue{Key: "loss", Value: Number(math.NaN())}).Validate(); err == nil {
		t.Error("expected error for NaN")
	}
	if err := (KeyValue{Key: "loss", Value: Number(0.1)}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
