package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-08")
	assert.NoError(t, err)
	assert.Equal(t, "2026-01-08", d.String())
	assert.Equal(t, time.Thursday, d.Weekday())
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.January, 5)

	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2026-01-05"`, string(data))

	var decoded Date
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded))
}

func TestDate_UnmarshalTimestamp(t *testing.T) {
	var d Date
	assert.NoError(t, json.Unmarshal([]byte(`"2026-01-05T00:00:00Z"`), &d))
	assert.Equal(t, "2026-01-05", d.String())
}

func TestDate_ScanTime(t *testing.T) {
	var d Date
	assert.NoError(t, d.Scan(time.Date(2026, time.March, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2026-03-02", d.String())
}
