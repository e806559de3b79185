package bridge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

func TestDecodeFrame(t *testing.T) {
	raw := `{"columns":["dist_id","school_name","enrollment"],"data":[["01","01"],["Alpha Elem","Beta Middle"],[512,null]]}`

	f, err := DecodeFrame([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, []string{"dist_id", "school_name", "enrollment"}, f.Names())
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, json.Number("512"), f.Columns[2].Values[0])
	assert.Nil(t, f.Columns[2].Values[1])
}

func TestDecodeFrameInvalid(t *testing.T) {
	_, err := DecodeFrame([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeYears(t *testing.T) {
	years, err := DecodeYears([]byte("[2015,2016,2017]"))
	require.NoError(t, err)
	assert.Equal(t, []int{2015, 2016, 2017}, years)
}

func TestDecodeYearsInvalid(t *testing.T) {
	_, err := DecodeYears([]byte(`{"oops":1}`))
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f, err := frame.New(
		[]string{"year", "grade"},
		[][]any{
			{json.Number("2023"), json.Number("2023")},
			{"KG", "01"},
		},
	)
	require.NoError(t, err)

	data, err := EncodeFrame(f)
	require.NoError(t, err)

	got, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, f.Names(), got.Names())
	assert.Equal(t, f.Columns, got.Columns)
}
