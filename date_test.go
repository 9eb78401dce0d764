package notion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-02-22")
	require.NoError(t, err)
	assert.False(t, d.HasTime)
	assert.Equal(t, "2022-02-22", d.String())

	dt, err := ParseDate("2020-12-08T12:00:00.000+01:00")
	require.NoError(t, err)
	assert.True(t, dt.HasTime)
	assert.Equal(t, 11, dt.UTC().Hour())
	assert.Equal(t, "2020-12-08T12:00:00+01:00", dt.String())

	_, err = ParseDate("22.02.2022")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	r := DateRange{Start: NewDate(2022, time.February, 22)}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2022-02-22","end":null,"time_zone":null}`, string(data))

	end := NewDateTime(time.Date(2022, time.March, 1, 9, 30, 0, 0, time.UTC))
	r.End = &end
	data, err = json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2022-02-22","end":"2022-03-01T09:30:00Z","time_zone":null}`, string(data))

	var back DateRange
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.Start.String(), back.Start.String())
	require.NotNil(t, back.End)
	assert.True(t, back.End.HasTime)
	assert.True(t, end.Equal(back.End.Time))
}
