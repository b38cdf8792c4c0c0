package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the dynamic type of a Value.
type Kind int

const (
	KindString Kind = iota
	KindBool
)

// Value is the tagged union used for both rule condition expectations and
// observed facts. Only booleans and strings are representable; rule data
// containing anything else is rejected at decode time.
type Value struct {
	kind Kind
	b    bool
	s    string
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind reports the dynamic type of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload. Only meaningful when Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// String returns the string form of the value. Booleans render as
// "true"/"false" so facts can always be shown in traces and explanations.
func (v Value) String() string {
	if v.kind == KindBool {
		return strconv.FormatBool(v.b)
	}
	return v.s
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindBool {
		return json.Marshal(v.b)
	}
	return json.Marshal(v.s)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = BoolValue(t)
	case string:
		*v = StringValue(t)
	default:
		return fmt.Errorf("value must be a boolean or a string, got %T", raw)
	}
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	if v.kind == KindBool {
		return v.b, nil
	}
	return v.s, nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case "!!str":
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		*v = StringValue(s)
	default:
		return fmt.Errorf("value must be a boolean or a string, got %s", node.Tag)
	}
	return nil
}

// Facts is the working-memory mapping of observed symptom keys to values.
type Facts map[string]Value

// Clone returns an independent copy of the fact set.
func (f Facts) Clone() Facts {
	out := make(Facts, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
