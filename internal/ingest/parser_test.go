package ingest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/prettylogs/internal/model"
)

func TestParse_Rejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty string", "", ErrMalformedInput},
		{"non-JSON line", "not a JSON string", ErrMalformedInput},
		{"truncated object", `{"v":1,`, ErrMalformedInput},
		{"array", `[1,2,3]`, ErrMalformedInput},
		{"number", `42`, ErrMalformedInput},
		{"string", `"hello"`, ErrMalformedInput},
		{"non-pino object", `{"hello":"world"}`, ErrUnsupportedSchema},
		{"wrong version", `{"v":2,"msg":"x"}`, ErrUnsupportedSchema},
		{"string version", `{"v":"1","msg":"x"}`, ErrUnsupportedSchema},
		{"null version", `{"v":null}`, ErrUnsupportedSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.line)
			assert.Nil(t, rec)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_MinimalLine(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":1,"time":1560370115565}`)

	require.NoError(t, err)
	require.NotNil(t, rec.Timestamp)
	assert.Equal(t, int64(1560370115565), *rec.Timestamp)
	assert.Nil(t, rec.Level)
	assert.Nil(t, rec.Message)
	assert.Nil(t, rec.Category)
	assert.Nil(t, rec.Meta)
	assert.Empty(t, rec.Extra)
}

func TestParse_AllFields(t *testing.T) {
	t.Parallel()
	line := `{"v":1,"level":40,"msg":"slow query","time":1560370115565,"name":"api",` +
		`"category":"db","instance":"web-1","commit":"0123456789abcdef","meta":{"ms":812},` +
		`"query":"SELECT 1","rows":3}`

	rec, err := Parse(line)

	require.NoError(t, err)
	assert.Equal(t, 1, rec.Version)
	assert.Equal(t, 40, *rec.Level)
	assert.Equal(t, "slow query", *rec.Message)
	assert.Equal(t, "api", *rec.LoggerName)
	assert.Equal(t, "db", *rec.Category)
	assert.Equal(t, "web-1", *rec.Instance)
	assert.Equal(t, "0123456789abcdef", *rec.CommitID)
	assert.Equal(t, `{"ms":812}`, rec.Meta.String())

	require.Len(t, rec.Extra, 2)
	assert.Equal(t, "query", rec.Extra[0].Key)
	assert.Equal(t, "SELECT 1", model.Text(rec.Extra[0].Value))
	assert.Equal(t, "rows", rec.Extra[1].Key)
	assert.Equal(t, "3", model.Text(rec.Extra[1].Value))
}

func TestParse_ExtraFieldsExcludeRecognized(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":1,"name":"foo","level":42,"msg":"hello","time":1234567890,"instance":"test","foo":"bar","egg":"spam"}`)

	require.NoError(t, err)
	keys := make([]string, 0, len(rec.Extra))
	for _, f := range rec.Extra {
		keys = append(keys, f.Key)
	}
	assert.Equal(t, []string{"foo", "egg"}, keys)
}

func TestParse_HTTPFieldsStayExtra(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":1,"level":30,"msg":"request completed","req":{"url":"/"},"res":{"statusCode":200},"responseTime":4}`)

	require.NoError(t, err)
	assert.NotNil(t, rec.ExtraValue(model.KeyRequest))
	assert.NotNil(t, rec.ExtraValue(model.KeyResponse))
	assert.NotNil(t, rec.ExtraValue(model.KeyResponseTime))
	assert.Nil(t, rec.ExtraValue("missing"))
}

func TestParse_DuplicateExtraKeyKeepsLastValue(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":1,"a":1,"b":2,"a":3}`)

	require.NoError(t, err)
	require.Len(t, rec.Extra, 2)
	assert.Equal(t, "a", rec.Extra[0].Key)
	assert.Equal(t, "3", model.Text(rec.Extra[0].Value))
}

func TestParse_LenientFieldTypes(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":1.0,"level":"info","msg":42,"time":"yesterday","category":null}`)

	require.NoError(t, err)
	assert.Nil(t, rec.Level, "non-numeric level is treated as absent")
	assert.Nil(t, rec.Timestamp, "non-numeric time is treated as absent")
	assert.Nil(t, rec.Category, "null category is absent")
	require.NotNil(t, rec.Message)
	assert.Equal(t, "42", *rec.Message)
}

func TestParse_DuplicateRecognizedKeyKeepsLastValue(t *testing.T) {
	t.Parallel()
	rec, err := Parse(`{"v":2,"level":20,"msg":"old","v":1,"level":50,"msg":"new"}`)

	require.NoError(t, err)
	require.NotNil(t, rec.Level)
	assert.Equal(t, 50, *rec.Level)
	require.NotNil(t, rec.Message)
	assert.Equal(t, "new", *rec.Message)
	assert.Empty(t, rec.Extra)
}

func TestParse_NumericLevelAndTime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		line      string
		wantLevel int
		wantTime  int64
	}{
		{"integral", `{"v":1,"level":30,"time":1560370115565}`, 30, 1560370115565},
		{"fraction rounds level up", `{"v":1,"level":30.9,"time":1560370115565.7}`, 31, 1560370115565},
		{"negative fraction", `{"v":1,"level":-12.5,"time":-1.5}`, -12, -1},
		{"huge saturates", `{"v":1,"level":1e20,"time":1e30}`, math.MaxInt, math.MaxInt64},
		{"tiny saturates", `{"v":1,"level":-1e20,"time":-1e30}`, math.MinInt, math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.line)
			require.NoError(t, err)
			require.NotNil(t, rec.Level)
			require.NotNil(t, rec.Timestamp)
			assert.Equal(t, tt.wantLevel, *rec.Level)
			assert.Equal(t, tt.wantTime, *rec.Timestamp)
		})
	}
}
