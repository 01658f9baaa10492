package unit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/hexbattle/internal/game/hex"
)

// Template defines a reusable unit archetype loaded from YAML. Templates are
// the static per-unit-type configuration table the engine consumes; they are
// never mutated after load.
type Template struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	Behavior          string `yaml:"behavior"` // "melee" or "ranged"
	MaxHP             int    `yaml:"max_hp"`
	ActionPoints      int    `yaml:"action_points"`
	AttackRange       int    `yaml:"attack_range"`
	AttackDamage      int    `yaml:"attack_damage"`
	MaxAttacksPerTurn int    `yaml:"max_attacks_per_turn"`
	// PreferredDistance is required for ranged templates and ignored for melee.
	PreferredDistance int `yaml:"preferred_distance"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Behavior is a
// known tag, MaxHP/ActionPoints/AttackDamage/MaxAttacksPerTurn are >= 1,
// AttackRange >= 1, and ranged templates carry PreferredDistance >= 1.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("unit template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("unit template %q: name must not be empty", t.ID)
	}
	if _, err := t.behavior(); err != nil {
		return err
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("unit template %q: max_hp must be >= 1", t.ID)
	}
	if t.ActionPoints < 1 {
		return fmt.Errorf("unit template %q: action_points must be >= 1", t.ID)
	}
	if t.AttackRange < 1 {
		return fmt.Errorf("unit template %q: attack_range must be >= 1", t.ID)
	}
	if t.AttackDamage < 1 {
		return fmt.Errorf("unit template %q: attack_damage must be >= 1", t.ID)
	}
	if t.MaxAttacksPerTurn < 1 {
		return fmt.Errorf("unit template %q: max_attacks_per_turn must be >= 1", t.ID)
	}
	if t.Behavior == "ranged" && t.PreferredDistance < 1 {
		return fmt.Errorf("unit template %q: preferred_distance must be >= 1 for ranged units", t.ID)
	}
	return nil
}

func (t *Template) behavior() (Behavior, error) {
	switch t.Behavior {
	case "melee":
		return Melee, nil
	case "ranged":
		return Ranged, nil
	default:
		return 0, fmt.Errorf("unit template %q: behavior must be \"melee\" or \"ranged\", got %q", t.ID, t.Behavior)
	}
}

// Spawn creates a live Unit from the template at the given coordinate.
// The unit starts at full HP with a fresh turn budget; the caller registers
// it with an Arena to assign IDs.
//
// Precondition: t must have passed Validate.
func (t *Template) Spawn(kind Kind, coord hex.Axial) *Unit {
	behavior, _ := t.behavior()
	return &Unit{
		TemplateID:        t.ID,
		Name:              t.Name,
		Kind:              kind,
		Behavior:          behavior,
		Coord:             coord,
		HP:                t.MaxHP,
		MaxHP:             t.MaxHP,
		AP:                t.ActionPoints,
		MaxAP:             t.ActionPoints,
		AttackRange:       t.AttackRange,
		AttackDamage:      t.AttackDamage,
		MaxAttacksPerTurn: t.MaxAttacksPerTurn,
		PreferredDistance: t.PreferredDistance,
		Alive:             true,
	}
}

// LoadTemplateFromBytes parses a single unit template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading units dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
