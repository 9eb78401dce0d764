package notion

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PropertyType is the discriminant of page property values
// and database property schemas.
type PropertyType string

const (
	CheckboxProperty       PropertyType = "checkbox"
	CreatedByProperty      PropertyType = "created_by"
	CreatedTimeProperty    PropertyType = "created_time"
	DateProperty           PropertyType = "date"
	EmailProperty          PropertyType = "email"
	FilesProperty          PropertyType = "files"
	FormulaProperty        PropertyType = "formula"
	LastEditedByProperty   PropertyType = "last_edited_by"
	LastEditedTimeProperty PropertyType = "last_edited_time"
	MultiSelectProperty    PropertyType = "multi_select"
	NumberProperty         PropertyType = "number"
	PeopleProperty         PropertyType = "people"
	PhoneNumberProperty    PropertyType = "phone_number"
	RelationProperty       PropertyType = "relation"
	RichTextProperty       PropertyType = "rich_text"
	RollupProperty         PropertyType = "rollup"
	SelectProperty         PropertyType = "select"
	StatusProperty         PropertyType = "status"
	TitleProperty          PropertyType = "title"
	URLProperty            PropertyType = "url"
	UniqueIDProperty       PropertyType = "unique_id"
)

// PropertyValue is the value of a single page property.
// The field matching Type holds the value; a nil field means the
// property is empty.
// Values of types not listed above are kept in Raw.
type PropertyValue struct {
	ID   PropertyID   `json:"id,omitempty"`
	Type PropertyType `json:"type"`

	Checkbox       *bool          `json:"checkbox,omitempty"`
	CreatedBy      *PartialUser   `json:"created_by,omitempty"`
	CreatedTime    *time.Time     `json:"created_time,omitempty"`
	Date           *DateRange     `json:"date,omitempty"`
	Email          *string        `json:"email,omitempty"`
	Files          []FileObject   `json:"files,omitempty"`
	Formula        *FormulaValue  `json:"formula,omitempty"`
	LastEditedBy   *PartialUser   `json:"last_edited_by,omitempty"`
	LastEditedTime *time.Time     `json:"last_edited_time,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	People         []PartialUser  `json:"people,omitempty"`
	PhoneNumber    *string        `json:"phone_number,omitempty"`
	Relation       []PageRef      `json:"relation,omitempty"`
	HasMore        bool           `json:"has_more,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Rollup         *RollupValue   `json:"rollup,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	Status         *SelectOption  `json:"status,omitempty"`
	Title          []RichText     `json:"title,omitempty"`
	URL            *string        `json:"url,omitempty"`
	UniqueID       *UniqueID      `json:"unique_id,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// SelectOption is an option of a select, multi_select or status property.
// Requests may reference an option by name alone.
type SelectOption struct {
	ID    OptionID `json:"id,omitempty"`
	Name  string   `json:"name,omitempty"`
	Color Color    `json:"color,omitempty"`
}

// FormulaValue is the computed result of a formula property.
type FormulaValue struct {
	Type    string     `json:"type"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateRange `json:"date,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	String  *string    `json:"string,omitempty"`
}

// RollupValue is the computed result of a rollup property.
type RollupValue struct {
	Type     string          `json:"type"`
	Function string          `json:"function"`
	Number   *float64        `json:"number,omitempty"`
	Date     *DateRange      `json:"date,omitempty"`
	Array    []PropertyValue `json:"array,omitempty"`
}

// UniqueID is an auto incremented id with an optional prefix.
type UniqueID struct {
	Prefix *string `json:"prefix"`
	Number *int    `json:"number"`
}

func (u UniqueID) String() string {
	if u.Number == nil {
		return ""
	}
	n := strconv.Itoa(*u.Number)
	if u.Prefix != nil && *u.Prefix != "" {
		return *u.Prefix + "-" + n
	}
	return n
}

// value returns the field for the property type.
func (p PropertyValue) value() interface{} {
	switch p.Type {
	case CheckboxProperty:
		return p.Checkbox
	case CreatedByProperty:
		return p.CreatedBy
	case CreatedTimeProperty:
		return p.CreatedTime
	case DateProperty:
		return p.Date
	case EmailProperty:
		return p.Email
	case FilesProperty:
		return orEmpty(p.Files)
	case FormulaProperty:
		return p.Formula
	case LastEditedByProperty:
		return p.LastEditedBy
	case LastEditedTimeProperty:
		return p.LastEditedTime
	case MultiSelectProperty:
		return orEmpty(p.MultiSelect)
	case NumberProperty:
		return p.Number
	case PeopleProperty:
		return orEmpty(p.People)
	case PhoneNumberProperty:
		return p.PhoneNumber
	case RelationProperty:
		return orEmpty(p.Relation)
	case RichTextProperty:
		return orEmpty(p.RichText)
	case RollupProperty:
		return p.Rollup
	case SelectProperty:
		return p.Select
	case StatusProperty:
		return p.Status
	case TitleProperty:
		return orEmpty(p.Title)
	case URLProperty:
		return p.URL
	case UniqueIDProperty:
		return p.UniqueID
	}
	if len(p.Raw) == 0 {
		return nil
	}
	return p.Raw
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func knownProperty(t PropertyType) bool {
	switch t {
	case CheckboxProperty, CreatedByProperty, CreatedTimeProperty, DateProperty,
		EmailProperty, FilesProperty, FormulaProperty, LastEditedByProperty,
		LastEditedTimeProperty, MultiSelectProperty, NumberProperty, PeopleProperty,
		PhoneNumberProperty, RelationProperty, RichTextProperty, RollupProperty,
		SelectProperty, StatusProperty, TitleProperty, URLProperty, UniqueIDProperty:
		return true
	}
	return false
}

// MarshalJSON always writes the value key for the property type,
// with an explicit null for empty scalar values
// and an empty array for empty list values.
func (p PropertyValue) MarshalJSON() ([]byte, error) {
	if p.Type == "" {
		return nil, fmt.Errorf("cannot encode property value without type")
	}
	m := map[string]interface{}{
		"type":         p.Type,
		string(p.Type): p.value(),
	}
	if p.ID != "" {
		m["id"] = p.ID
	}
	if p.Type == RelationProperty && p.HasMore {
		m["has_more"] = true
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PropertyValue) UnmarshalJSON(b []byte) error {
	type plain PropertyValue
	var v plain
	err := json.Unmarshal(b, &v)
	if err != nil {
		return err
	}
	*p = PropertyValue(v)

	if p.Type != "" && !knownProperty(p.Type) {
		var fields map[string]json.RawMessage
		err = json.Unmarshal(b, &fields)
		if err != nil {
			return err
		}
		p.Raw = fields[string(p.Type)]
	}
	return nil
}

// String returns a plain text rendition of the value.
func (p PropertyValue) String() string {
	switch p.Type {
	case TitleProperty:
		return PlainTextOf(p.Title)
	case RichTextProperty:
		return PlainTextOf(p.RichText)
	case CheckboxProperty:
		if p.Checkbox != nil && *p.Checkbox {
			return "true"
		}
		return "false"
	case NumberProperty:
		if p.Number != nil {
			return strconv.FormatFloat(*p.Number, 'f', -1, 64)
		}
	case SelectProperty:
		if p.Select != nil {
			return p.Select.Name
		}
	case StatusProperty:
		if p.Status != nil {
			return p.Status.Name
		}
	case MultiSelectProperty:
		names := make([]string, len(p.MultiSelect))
		for i, o := range p.MultiSelect {
			names[i] = o.Name
		}
		return strings.Join(names, ", ")
	case DateProperty:
		if p.Date != nil {
			if p.Date.End != nil {
				return p.Date.Start.String() + " - " + p.Date.End.String()
			}
			return p.Date.Start.String()
		}
	case EmailProperty:
		return deref(p.Email)
	case PhoneNumberProperty:
		return deref(p.PhoneNumber)
	case URLProperty:
		return deref(p.URL)
	case UniqueIDProperty:
		if p.UniqueID != nil {
			return p.UniqueID.String()
		}
	case CreatedTimeProperty:
		if p.CreatedTime != nil {
			return p.CreatedTime.Format(time.RFC3339)
		}
	case LastEditedTimeProperty:
		if p.LastEditedTime != nil {
			return p.LastEditedTime.Format(time.RFC3339)
		}
	case FormulaProperty:
		if p.Formula != nil {
			return p.Formula.Text()
		}
	case RelationProperty:
		ids := make([]string, len(p.Relation))
		for i, r := range p.Relation {
			ids[i] = r.ID.String()
		}
		return strings.Join(ids, ", ")
	}
	return ""
}

// Text returns the result as plain text.
func (f FormulaValue) Text() string {
	switch {
	case f.String != nil:
		return *f.String
	case f.Number != nil:
		return strconv.FormatFloat(*f.Number, 'f', -1, 64)
	case f.Boolean != nil:
		return strconv.FormatBool(*f.Boolean)
	case f.Date != nil:
		return f.Date.Start.String()
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Constructors for request payloads -------------------------------------------

// TitleValue creates a title property value.
func TitleValue(text ...RichText) PropertyValue {
	return PropertyValue{Type: TitleProperty, Title: text}
}

// RichTextValue creates a rich_text property value.
func RichTextValue(text ...RichText) PropertyValue {
	return PropertyValue{Type: RichTextProperty, RichText: text}
}

// NumberValue creates a number property value.
func NumberValue(n float64) PropertyValue {
	return PropertyValue{Type: NumberProperty, Number: &n}
}

// CheckboxValue creates a checkbox property value.
func CheckboxValue(checked bool) PropertyValue {
	return PropertyValue{Type: CheckboxProperty, Checkbox: &checked}
}

// SelectValue selects the option with the given name.
func SelectValue(name string) PropertyValue {
	return PropertyValue{Type: SelectProperty, Select: &SelectOption{Name: name}}
}

// MultiSelectValue selects the options with the given names.
func MultiSelectValue(names ...string) PropertyValue {
	opts := make([]SelectOption, len(names))
	for i, n := range names {
		opts[i] = SelectOption{Name: n}
	}
	return PropertyValue{Type: MultiSelectProperty, MultiSelect: opts}
}

// StatusValue sets the status with the given name.
func StatusValue(name string) PropertyValue {
	return PropertyValue{Type: StatusProperty, Status: &SelectOption{Name: name}}
}

// DateValue creates a date property value. end may be nil.
func DateValue(start Date, end *Date) PropertyValue {
	return PropertyValue{Type: DateProperty, Date: &DateRange{Start: start, End: end}}
}

// EmailValue creates an email property value.
func EmailValue(email string) PropertyValue {
	return PropertyValue{Type: EmailProperty, Email: &email}
}

// URLValue creates a url property value.
func URLValue(url string) PropertyValue {
	return PropertyValue{Type: URLProperty, URL: &url}
}

// PhoneNumberValue creates a phone_number property value.
func PhoneNumberValue(phone string) PropertyValue {
	return PropertyValue{Type: PhoneNumberProperty, PhoneNumber: &phone}
}

// RelationValue relates to the given pages.
func RelationValue(ids ...PageID) PropertyValue {
	refs := make([]PageRef, len(ids))
	for i, id := range ids {
		refs[i] = PageRef{ID: id}
	}
	return PropertyValue{Type: RelationProperty, Relation: refs}
}

// PeopleValue assigns the given users.
func PeopleValue(ids ...UserID) PropertyValue {
	people := make([]PartialUser, len(ids))
	for i, id := range ids {
		people[i] = UserRef(id)
	}
	return PropertyValue{Type: PeopleProperty, People: people}
}

// EmptyValue clears a property of the given type.
func EmptyValue(t PropertyType) PropertyValue {
	return PropertyValue{Type: t}
}
