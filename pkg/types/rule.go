package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Device type strings recognized by the rule store. Anything else falls
// back to the combined catalog rather than erroring, since device names
// arrive from the dialogue layer with inconsistent casing and synonyms.
const (
	DeviceComputer = "computer"
	DeviceMobile   = "mobile"
)

// ConditionDevice is the reserved condition key constraining which device
// type a rule applies to. It is excluded from symptom-key listings.
const ConditionDevice = "device"

// Conditions is an ordered mapping from symptom key to expected value.
// Source order is preserved so matched/unmatched condition lists read the
// same way the rule was authored; order never affects scoring.
type Conditions struct {
	keys   []string
	values map[string]Value
}

// Len returns the number of conditions.
func (c *Conditions) Len() int { return len(c.keys) }

// Keys returns the condition keys in source order.
func (c *Conditions) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get looks up the expected value for a condition key.
func (c *Conditions) Get(key string) (Value, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set adds or replaces a condition. New keys keep insertion order.
func (c *Conditions) Set(key string, v Value) {
	if c.values == nil {
		c.values = make(map[string]Value)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

func (c Conditions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (c *Conditions) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("conditions must be an object")
	}
	*c = Conditions{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("condition key must be a string")
		}
		var v Value
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("condition %q: %w", key, err)
		}
		c.Set(key, v)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (c Conditions) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range c.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		raw, err := c.values[k].MarshalYAML()
		if err != nil {
			return nil, err
		}
		if err := valNode.Encode(raw); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func (c *Conditions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("conditions must be a mapping")
	}
	*c = Conditions{}
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		var v Value
		if err := v.UnmarshalYAML(valNode); err != nil {
			return fmt.Errorf("condition %q: %w", key, err)
		}
		c.Set(key, v)
	}
	return nil
}

// Rule is one diagnostic unit: a set of matchable conditions, the cause
// they point to, and the remediation steps, with an author-assigned prior
// confidence. IDs are stable identifiers used for traceability only.
type Rule struct {
	ID          string     `json:"id" yaml:"id" validate:"required"`
	Category    string     `json:"category" yaml:"category" validate:"required"`
	Conditions  Conditions `json:"conditions" yaml:"conditions"`
	Cause       string     `json:"cause" yaml:"cause" validate:"required"`
	CauseAr     string     `json:"cause_ar,omitempty" yaml:"cause_ar,omitempty"`
	Solutions   []string   `json:"solutions" yaml:"solutions" validate:"required,min=1,dive,required"`
	SolutionsAr []string   `json:"solutions_ar,omitempty" yaml:"solutions_ar,omitempty"`
	Confidence  float64    `json:"confidence" yaml:"confidence" validate:"gte=0,lte=1"`
}

// CauseIn returns the localized cause, falling back to the base language
// when no translation was authored.
func (r *Rule) CauseIn(lang string) string {
	if lang == "ar" && r.CauseAr != "" {
		return r.CauseAr
	}
	return r.Cause
}

// SolutionsIn returns the localized solutions with base-language fallback.
func (r *Rule) SolutionsIn(lang string) []string {
	if lang == "ar" && len(r.SolutionsAr) > 0 {
		return r.SolutionsAr
	}
	return r.Solutions
}
