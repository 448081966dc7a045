package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		want  TimeOfDay
	}{
		{"00:00", 0},
		{"09:15", 9*60 + 15},
		{"17:00:59", 17 * 60},
		{"23:59", 23*60 + 59},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}

	for _, bad := range []string{"", "24:00", "9h", "12:60"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDay_Arithmetic(t *testing.T) {
	nine := MustParseTimeOfDay("09:00")

	assert.Equal(t, "09:15", nine.Add(15).String())
	assert.Equal(t, 60, MustParseTimeOfDay("10:00").Sub(nine))
	assert.Equal(t, TimeOfDay(0), nine.Add(-24*60))
	assert.Equal(t, "23:59", nine.Add(24*60).String())
	assert.True(t, nine.Before(nine.Add(1)))
	assert.True(t, nine.Add(1).After(nine))
}

func TestTimeOfDay_OfAndOn(t *testing.T) {
	loc := time.FixedZone("WIB", 7*3600)
	ts := time.Date(2024, 3, 4, 8, 45, 30, 0, loc)

	tod := Of(ts)
	assert.Equal(t, "08:45", tod.String())

	anchored := tod.On(ts, loc)
	assert.Equal(t, time.Date(2024, 3, 4, 8, 45, 0, 0, loc), anchored)
}

func TestTimeOfDay_JSON(t *testing.T) {
	type payload struct {
		At  TimeOfDay  `json:"at"`
		Opt *TimeOfDay `json:"opt"`
	}

	data, err := json.Marshal(payload{At: MustParseTimeOfDay("13:05")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"at":"13:05","opt":null}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"at":"07:30","opt":"12:00"}`), &decoded))
	assert.Equal(t, MustParseTimeOfDay("07:30"), decoded.At)
	require.NotNil(t, decoded.Opt)
	assert.Equal(t, "12:00", decoded.Opt.String())

	assert.Error(t, json.Unmarshal([]byte(`{"at":"25:00"}`), &decoded))
}

func TestPtrAndFormatPtr(t *testing.T) {
	got, err := Ptr(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "10:30"
	got, err = Ptr(&s)
	require.NoError(t, err)
	assert.Equal(t, "10:30", *FormatPtr(got))

	bad := "nope"
	_, err = Ptr(&bad)
	assert.Error(t, err)
	assert.Nil(t, FormatPtr(nil))
}
