package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestTags_Value(t *testing.T) {
	v, err := Tags(nil).Value()
	if err != nil || v != "[]" {
		t.Errorf("nil tags Value = %v, %v; want \"[]\"", v, err)
	}

	v, err = Tags{"work", "home"}.Value()
	if err != nil || v != `["work","home"]` {
		t.Errorf("Value = %v, %v", v, err)
	}
}

func TestTags_Scan(t *testing.T) {
	cases := []struct {
		src  any
		want Tags
	}{
		{nil, Tags{}},
		{"", Tags{}},
		{"[]", Tags{}},
		{`["a","b"]`, Tags{"a", "b"}},
		{[]byte(`["c"]`), Tags{"c"}},
	}

	for _, tc := range cases {
		var got Tags
		if err := got.Scan(tc.src); err != nil {
			t.Errorf("Scan(%v) error: %v", tc.src, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Scan(%v) = %#v, want %#v", tc.src, got, tc.want)
		}
	}

	var bad Tags
	if err := bad.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
	if err := bad.Scan("{not json"); err == nil {
		t.Error("expected error scanning malformed JSON")
	}
}

func TestTags_MarshalNilAsEmptyArray(t *testing.T) {
	b, err := json.Marshal(Task{})
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if tags, ok := out["tags"].([]any); !ok || len(tags) != 0 {
		t.Errorf("expected tags to be [], got %v", out["tags"])
	}
	if out["dueDate"] != nil {
		t.Errorf("expected dueDate null, got %v", out["dueDate"])
	}
}

func TestTags_Contains(t *testing.T) {
	tags := Tags{"a", "b"}
	if !tags.Contains("a") || tags.Contains("c") {
		t.Error("Contains returned unexpected result")
	}
}
