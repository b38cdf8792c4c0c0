package kb

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mrhapile/techtriage/pkg/types"
)

//go:embed data/computer_rules.json data/mobile_rules.json
var defaultData embed.FS

// ErrInvalidRule marks rule records that fail structural validation.
// Load errors are fatal: the store is never populated best-effort.
var ErrInvalidRule = errors.New("kb: invalid rule")

var validate = validator.New()

// ruleFile is the on-disk shape of a rule catalog: a single top-level
// "rules" list, in JSON or YAML.
type ruleFile struct {
	Rules []types.Rule `json:"rules" yaml:"rules"`
}

// LoadDefault builds a store from the rule catalogs embedded in the
// binary.
func LoadDefault() (*Store, error) {
	computer, err := loadEmbedded("data/computer_rules.json")
	if err != nil {
		return nil, err
	}
	mobile, err := loadEmbedded("data/mobile_rules.json")
	if err != nil {
		return nil, err
	}
	return newChecked(computer, mobile)
}

// LoadDir builds a store from computer_rules and mobile_rules files in
// dir, accepting .json, .yaml, or .yml. A missing file simply yields an
// empty partition; a present but malformed file is a fatal load error.
func LoadDir(dir string) (*Store, error) {
	computer, err := loadFirst(dir, "computer_rules")
	if err != nil {
		return nil, err
	}
	mobile, err := loadFirst(dir, "mobile_rules")
	if err != nil {
		return nil, err
	}
	return newChecked(computer, mobile)
}

// LoadFile reads and validates a single rule catalog file. Unlike
// LoadDir, a missing file is an error here.
func LoadFile(path string) ([]types.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kb: read %s: %w", path, err)
	}
	rules, err := decodeRules(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("kb: %s: %w", path, err)
	}
	return rules, nil
}

func loadFirst(dir, base string) ([]types.Rule, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return LoadFile(path)
	}
	return nil, nil
}

func loadEmbedded(name string) ([]types.Rule, error) {
	data, err := defaultData.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("kb: embedded %s: %w", name, err)
	}
	rules, err := decodeRules(data, filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("kb: embedded %s: %w", name, err)
	}
	return rules, nil
}

func decodeRules(data []byte, ext string) ([]types.Rule, error) {
	var file ruleFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}
	for i := range file.Rules {
		if err := checkRule(&file.Rules[i]); err != nil {
			return nil, err
		}
	}
	return file.Rules, nil
}

func checkRule(r *types.Rule) error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRule, r.ID, err)
	}
	// A rule with no conditions can never score above 0, which would make
	// it unreachable; reject it as authoring error rather than carry it.
	if r.Conditions.Len() == 0 {
		return fmt.Errorf("%w: %s: conditions must not be empty", ErrInvalidRule, r.ID)
	}
	if _, ok := r.Conditions.Get(types.ConditionDevice); !ok {
		return fmt.Errorf("%w: %s: missing %q condition", ErrInvalidRule, r.ID, types.ConditionDevice)
	}
	return nil
}

func newChecked(computer, mobile []types.Rule) (*Store, error) {
	seen := make(map[string]struct{}, len(computer)+len(mobile))
	for _, r := range append(append([]types.Rule{}, computer...), mobile...) {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidRule, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return New(computer, mobile), nil
}
