package notion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePage(t *testing.T) {
	var p Page
	require.NoError(t, json.Unmarshal(readFixture(t, "page.json"), &p))

	assert.Equal(t, MustParsePageID("59833787-2cf9-4fdf-8782-e53db20768a5"), p.ID)
	assert.Equal(t, DatabaseParentType, p.Parent.Type)
	assert.Equal(t, "database "+MustParseDatabaseID("d9824bdc84454327be8b5b47500af6ce").String(), p.Parent.String())
	assert.Equal(t, "Tuscan kale", p.Title())
	require.NotNil(t, p.Icon)
	assert.Equal(t, "🥬", p.Icon.Emoji)
	require.NotNil(t, p.Cover)
	assert.Contains(t, p.Cover.URL(), "Tuscankale.jpg")

	expected := map[string]string{
		"Name":              "Tuscan kale",
		"Price":             "2.5",
		"In stock":          "true",
		"Store":             "Gus's Community Market",
		"Food group":        "Vegetable, Leafy",
		"Last ordered":      "2022-02-22",
		"Contact":           "",
		"Recipes":           "90eeeed8-2cdd-4af4-9cc1-3d24aff5f63c",
		"Cost of next trip": "7.5",
		"SKU":               "KALE-42",
		"Status":            "Ready",
		"Photo":             "https://example.com/kale.jpg",
		"Reorder":           "",
	}
	for name, want := range expected {
		v, ok := p.Properties[name]
		require.True(t, ok, name)
		assert.Equal(t, want, v.String(), name)
	}

	assert.Equal(t, PropertyID("BJXS"), p.Properties["Price"].ID)
	assert.Nil(t, p.Properties["Contact"].Email)

	rollup := p.Properties["Number of meals"].Rollup
	require.NotNil(t, rollup)
	assert.Equal(t, "count", rollup.Function)
	assert.Equal(t, 2.0, *rollup.Number)

	unknown := p.Properties["Reorder"]
	assert.Equal(t, PropertyType("button"), unknown.Type)
	assert.JSONEq(t, `{}`, string(unknown.Raw))
}

func TestEncodePropertyValue(t *testing.T) {
	cases := []struct {
		value PropertyValue
		want  string
	}{
		{TitleValue(NewText("Tuscan kale")), `{"type":"title","title":[{"type":"text","text":{"content":"Tuscan kale"}}]}`},
		{NumberValue(2.5), `{"type":"number","number":2.5}`},
		{CheckboxValue(false), `{"type":"checkbox","checkbox":false}`},
		{SelectValue("Gus's Community Market"), `{"type":"select","select":{"name":"Gus's Community Market"}}`},
		{MultiSelectValue("Vegetable", "Leafy"), `{"type":"multi_select","multi_select":[{"name":"Vegetable"},{"name":"Leafy"}]}`},
		{StatusValue("Ready"), `{"type":"status","status":{"name":"Ready"}}`},
		{DateValue(NewDate(2022, time.February, 22), nil), `{"type":"date","date":{"start":"2022-02-22","end":null,"time_zone":null}}`},
		{EmailValue("kale@example.com"), `{"type":"email","email":"kale@example.com"}`},
		{URLValue("https://example.com"), `{"type":"url","url":"https://example.com"}`},
		{PhoneNumberValue("+49 30 1234"), `{"type":"phone_number","phone_number":"+49 30 1234"}`},
		{RelationValue(MustParsePageID("90eeeed82cdd4af49cc13d24aff5f63c")), `{"type":"relation","relation":[{"id":"90eeeed8-2cdd-4af4-9cc1-3d24aff5f63c"}]}`},
		{PeopleValue(MustParseUserID("ee5f0f84409a440f983aa5315961c6e4")), `{"type":"people","people":[{"object":"user","id":"ee5f0f84-409a-440f-983a-a5315961c6e4"}]}`},
		{EmptyValue(SelectProperty), `{"type":"select","select":null}`},
		{EmptyValue(DateProperty), `{"type":"date","date":null}`},
		{EmptyValue(MultiSelectProperty), `{"type":"multi_select","multi_select":[]}`},
		{EmptyValue(FilesProperty), `{"type":"files","files":[]}`},
		{RichTextValue(), `{"type":"rich_text","rich_text":[]}`},
		{TitleValue(), `{"type":"title","title":[]}`},
		{RelationValue(), `{"type":"relation","relation":[]}`},
		{PeopleValue(), `{"type":"people","people":[]}`},
	}
	for _, c := range cases {
		data, err := json.Marshal(c.value)
		require.NoError(t, err)
		assert.JSONEq(t, c.want, string(data))
	}

	_, err := json.Marshal(PropertyValue{})
	assert.Error(t, err)
}

func TestPropertyValueRoundTrip(t *testing.T) {
	var p Page
	require.NoError(t, json.Unmarshal(readFixture(t, "page.json"), &p))

	for name, v := range p.Properties {
		data, err := json.Marshal(v)
		require.NoError(t, err, name)

		var back PropertyValue
		require.NoError(t, json.Unmarshal(data, &back), name)
		assert.Equal(t, v.String(), back.String(), name)
		assert.Equal(t, v.Type, back.Type, name)
	}
}

func TestDecodeDatabase(t *testing.T) {
	var db Database
	require.NoError(t, json.Unmarshal(readFixture(t, "database.json"), &db))

	assert.Equal(t, MustParseDatabaseID("d9824bdc-8445-4327-be8b-5b47500af6ce"), db.ID)
	assert.Equal(t, "Grocery List", PlainTextOf(db.Title))
	require.Len(t, db.Properties, 5)

	assert.Equal(t, TitleProperty, db.Properties["Name"].Type)
	require.NotNil(t, db.Properties["Price"].Number)
	assert.Equal(t, "dollar", db.Properties["Price"].Number.Format)
	require.NotNil(t, db.Properties["Store"].Select)
	assert.Len(t, db.Properties["Store"].Select.Options, 1)
	require.NotNil(t, db.Properties["Recipes"].Relation)
	assert.Equal(t, MustParseDatabaseID("90eeeed8-2cdd-4af4-9cc1-3d24aff5f63c"), db.Properties["Recipes"].Relation.DatabaseID)
	require.NotNil(t, db.Properties["Cost"].Formula)
}

func TestEncodeSchema(t *testing.T) {
	data, err := json.Marshal(SchemaOf(TitleProperty))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"title","title":{}}`, string(data))

	data, err = json.Marshal(NumberSchema("euro"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"number","number":{"format":"euro"}}`, string(data))

	data, err = json.Marshal(SelectSchema(SelectOption{Name: "A", Color: Red}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"select","select":{"options":[{"name":"A","color":"red"}]}}`, string(data))

	_, err = json.Marshal(PropertySchema{})
	assert.Error(t, err)
}
