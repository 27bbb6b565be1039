package entity

import (
	"reflect"
	"testing"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  StringList
	}{
		{
			name:  "json array",
			value: []byte(`["Warm cooked grains","soups"]`),
			want:  StringList{"Warm cooked grains", "soups"},
		},
		{
			name:  "comma separated fallback",
			value: "Gentle tonics, rest, easy exercise",
			want:  StringList{"Gentle tonics", "rest", "easy exercise"},
		},
		{
			name:  "nil becomes empty list",
			value: nil,
			want:  StringList{},
		},
		{
			name:  "blank string becomes empty list",
			value: "   ",
			want:  StringList{},
		},
		{
			name:  "trailing commas and spaces are dropped",
			value: "a, ,b,",
			want:  StringList{"a", "b"},
		},
		{
			name:  "unexpected type becomes empty list",
			value: 42,
			want:  StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := got.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v) error = %v", tt.value, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestStringListValue(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != `["a","b"]` {
		t.Errorf("Value() = %s, want [\"a\",\"b\"]", v)
	}

	v, err = StringList(nil).Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if string(v.([]byte)) != `[]` {
		t.Errorf("nil Value() = %s, want []", v)
	}
}
