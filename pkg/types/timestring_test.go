package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"09:00:30", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", false}, // конец суток для правой границы
		{"24:01", true},
		{"25:00", true},
		{"09:60", true},
		{"9:00", true},
		{"09:00:60", true},
		{"09:00garbage", true},
		{"garbage", true},
		{"", true},
		{"09", true},
		{"09:0a", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestTimeStringBeforeAfterEqual(t *testing.T) {
	assert.True(t, TimeString("09:00").Before("10:00"))
	assert.False(t, TimeString("10:00").Before("09:00"))
	assert.False(t, TimeString("09:00").Before("09:00"))

	assert.True(t, TimeString("10:00").After("09:00"))
	assert.False(t, TimeString("09:00").After("10:00"))

	// "09:00" и "09:00:00" обозначают один момент суток
	assert.True(t, TimeString("09:00").Equal("09:00:00"))
	assert.False(t, TimeString("09:00").Equal("09:01"))

	// "24:00" позже любого времени дня
	assert.True(t, TimeString("23:59").Before("24:00"))

	// Некорректные значения несравнимы
	assert.False(t, TimeString("garbage").Before("10:00"))
	assert.False(t, TimeString("09:00").Before("garbage"))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	ts, err = TimeString("09:30").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	// Ровно до конца суток — допустимо
	ts, err = TimeString("23:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "24:00", ts.String())

	// Переход через полночь — ошибка
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, "09:30", NewTimeString(moment).String())
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, "09:00:00", ts.String())

	require.NoError(t, ts.Scan([]byte("10:30")))
	assert.Equal(t, "10:30", ts.String())

	require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, "14:15:00", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := TimeString("09:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("garbage").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
