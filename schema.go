package notion

import (
	"encoding/json"
	"fmt"
)

// PropertySchema describes a column of a database.
// Types without configuration are encoded with an empty object.
type PropertySchema struct {
	ID   PropertyID   `json:"id,omitempty"`
	Name string       `json:"name,omitempty"`
	Type PropertyType `json:"type"`

	Number      *NumberConfig   `json:"number,omitempty"`
	Select      *OptionsConfig  `json:"select,omitempty"`
	MultiSelect *OptionsConfig  `json:"multi_select,omitempty"`
	Status      *StatusConfig   `json:"status,omitempty"`
	Formula     *FormulaConfig  `json:"formula,omitempty"`
	Relation    *RelationConfig `json:"relation,omitempty"`
	Rollup      *RollupConfig   `json:"rollup,omitempty"`
}

// NumberConfig sets the display format of a number property,
// e.g. "number", "percent" or "euro".
type NumberConfig struct {
	Format string `json:"format"`
}

// OptionsConfig lists the options of a select or multi_select property.
type OptionsConfig struct {
	Options []SelectOption `json:"options"`
}

// StatusConfig lists the options and groups of a status property.
type StatusConfig struct {
	Options []SelectOption `json:"options"`
	Groups  []StatusGroup  `json:"groups,omitempty"`
}

// StatusGroup groups status options, e.g. "To-do", "In progress", "Complete".
type StatusGroup struct {
	ID        OptionID   `json:"id,omitempty"`
	Name      string     `json:"name"`
	Color     Color      `json:"color,omitempty"`
	OptionIDs []OptionID `json:"option_ids"`
}

// FormulaConfig holds the expression of a formula property.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// RelationConfig points to the related database.
type RelationConfig struct {
	DatabaseID     DatabaseID      `json:"database_id"`
	Type           string          `json:"type,omitempty"`
	SingleProperty json.RawMessage `json:"single_property,omitempty"`
	DualProperty   json.RawMessage `json:"dual_property,omitempty"`
}

// RollupConfig configures a rollup over a relation.
type RollupConfig struct {
	RelationPropertyName string     `json:"relation_property_name,omitempty"`
	RelationPropertyID   PropertyID `json:"relation_property_id,omitempty"`
	RollupPropertyName   string     `json:"rollup_property_name,omitempty"`
	RollupPropertyID     PropertyID `json:"rollup_property_id,omitempty"`
	Function             string     `json:"function"`
}

func (s PropertySchema) config() interface{} {
	switch s.Type {
	case NumberProperty:
		if s.Number != nil {
			return s.Number
		}
	case SelectProperty:
		if s.Select != nil {
			return s.Select
		}
	case MultiSelectProperty:
		if s.MultiSelect != nil {
			return s.MultiSelect
		}
	case StatusProperty:
		if s.Status != nil {
			return s.Status
		}
	case FormulaProperty:
		if s.Formula != nil {
			return s.Formula
		}
	case RelationProperty:
		if s.Relation != nil {
			return s.Relation
		}
	case RollupProperty:
		if s.Rollup != nil {
			return s.Rollup
		}
	}
	return struct{}{}
}

// MarshalJSON implements json.Marshaler.
func (s PropertySchema) MarshalJSON() ([]byte, error) {
	if s.Type == "" {
		return nil, fmt.Errorf("cannot encode property schema without type")
	}
	m := map[string]interface{}{
		"type":         s.Type,
		string(s.Type): s.config(),
	}
	if s.ID != "" {
		m["id"] = s.ID
	}
	if s.Name != "" {
		m["name"] = s.Name
	}
	return json.Marshal(m)
}

// SchemaOf creates the schema for a property type that needs no
// configuration, e.g. title, rich_text, checkbox or date.
func SchemaOf(t PropertyType) PropertySchema {
	return PropertySchema{Type: t}
}

// NumberSchema creates a number property with the given format.
func NumberSchema(format string) PropertySchema {
	return PropertySchema{Type: NumberProperty, Number: &NumberConfig{Format: format}}
}

// SelectSchema creates a select property with the given options.
func SelectSchema(options ...SelectOption) PropertySchema {
	return PropertySchema{Type: SelectProperty, Select: &OptionsConfig{Options: options}}
}

// MultiSelectSchema creates a multi_select property with the given options.
func MultiSelectSchema(options ...SelectOption) PropertySchema {
	return PropertySchema{Type: MultiSelectProperty, MultiSelect: &OptionsConfig{Options: options}}
}

// FormulaSchema creates a formula property.
func FormulaSchema(expression string) PropertySchema {
	return PropertySchema{Type: FormulaProperty, Formula: &FormulaConfig{Expression: expression}}
}

// RelationSchema creates a one-way relation to the given database.
func RelationSchema(target DatabaseID) PropertySchema {
	return PropertySchema{
		Type: RelationProperty,
		Relation: &RelationConfig{
			DatabaseID:     target,
			Type:           "single_property",
			SingleProperty: json.RawMessage("{}"),
		},
	}
}
