package core_test

import (
	"testing"
	"time"

	"github.com/alejandrodnm/cyhole/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pool struct {
	Address  string   `json:"address"`
	Fee      float64  `json:"fee" validate:"gte=0,lte=1"`
	Label    *string  `json:"label"`
	Tags     []string `json:"tags,omitempty"`
	Side     string   `json:"side" validate:"oneof=buy sell"`
	Reserves struct {
		Base  int64 `json:"base"`
		Quote int64 `json:"quote"`
	} `json:"reserves"`
}

type envelope struct {
	Success bool   `json:"success"`
	Data    []pool `json:"data" validate:"dive"`
}

func TestDecode_ValidPayload(t *testing.T) {
	raw := []byte(`{"success":true,"data":[{"address":"p1","fee":0.003,"side":"buy","reserves":{"base":10,"quote":20},"extra":"ignored"}]}`)

	got, err := core.Decode[envelope](raw, false)
	require.NoError(t, err)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "p1", got.Data[0].Address)
	assert.Nil(t, got.Data[0].Label)
	assert.Equal(t, int64(20), got.Data[0].Reserves.Quote)
}

func TestDecode_StrictRejectsUnknownField(t *testing.T) {
	raw := []byte(`{"success":true,"data":[],"extra":1}`)

	_, err := core.Decode[envelope](raw, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.KindSchema)
	e, _ := core.AsError(err)
	assert.Equal(t, "extra", e.Field)
}

func TestDecode_MissingNestedField(t *testing.T) {
	raw := []byte(`{"success":true,"data":[{"address":"p1","fee":0,"side":"buy","reserves":{"base":1}}]}`)

	_, err := core.Decode[envelope](raw, false)
	require.Error(t, err)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindSchema, e.Kind)
	assert.Equal(t, "data[0].reserves.quote", e.Field)
}

func TestDecode_NullRequiredField(t *testing.T) {
	raw := []byte(`{"success":true,"data":null}`)

	_, err := core.Decode[envelope](raw, false)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "data", e.Field)
}

func TestDecode_TypeMismatch(t *testing.T) {
	raw := []byte(`{"success":"yes","data":[]}`)

	_, err := core.Decode[envelope](raw, false)
	e, ok := core.AsError(err)
	require.True(t, ok)
	assert.Equal(t, core.KindSchema, e.Kind)
	assert.Equal(t, "success", e.Field)
}

func TestDecode_ConstraintViolation(t *testing.T) {
	raw := []byte(`{"success":true,"data":[{"address":"p1","fee":2,"side":"buy","reserves":{"base":1,"quote":1}}]}`)

	_, err := core.Decode[envelope](raw, false)
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, core.KindSchema, e.Kind)
	assert.Contains(t, e.Field, "fee")
	assert.Contains(t, e.Message, "lte")
}

func TestDecode_TopLevelSliceConstraint(t *testing.T) {
	raw := []byte(`[{"address":"p1","fee":0,"side":"hold","reserves":{"base":1,"quote":1}}]`)

	_, err := core.Decode[[]pool](raw, false)
	require.Error(t, err)
	e, _ := core.AsError(err)
	assert.Equal(t, "[0].side", e.Field)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := core.Decode[envelope]([]byte(`{"success":`), false)
	assert.ErrorIs(t, err, core.KindDecode)
}

func TestValidateStruct_Options(t *testing.T) {
	type opts struct {
		Limit int `validate:"omitempty,gt=0,lte=100"`
	}
	require.NoError(t, core.ValidateStruct(opts{}))
	require.NoError(t, core.ValidateStruct(&opts{Limit: 100}))

	err := core.ValidateStruct(opts{Limit: 101})
	assert.ErrorIs(t, err, core.KindParameter)
	e, _ := core.AsError(err)
	assert.Equal(t, "Limit", e.Field)
	assert.Equal(t, "101", e.Value)
}

func TestFlexTime_Formats(t *testing.T) {
	type row struct {
		At core.FlexTime `json:"at"`
	}
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	for _, raw := range []string{
		`{"at":"2024-03-01T12:30:00Z"}`,
		`{"at":"2024-03-01T12:30:00"}`,
		`{"at":"2024-03-01 12:30:00"}`,
		`{"at":1709296200}`,
		`{"at":1709296200000}`,
		`{"at":"1709296200"}`,
	} {
		got, err := core.Decode[row]([]byte(raw), false)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got.At.Time), raw)
	}

	_, err := core.Decode[row]([]byte(`{"at":"yesterday"}`), false)
	assert.ErrorIs(t, err, core.KindSchema)
}

func TestCheckTimeRange(t *testing.T) {
	from := time.Unix(200, 0)
	to := time.Unix(100, 0)

	assert.NoError(t, core.CheckTimeRange("time", to, from, nil))
	assert.NoError(t, core.CheckTimeRange("time", from, time.Time{}, nil))

	err := core.CheckTimeRange("time", from, to, nil)
	assert.ErrorIs(t, err, core.KindParameter)
}
