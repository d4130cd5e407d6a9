package countdown

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainingString(t *testing.T) {
	assert.Equal(t, "00:20", Remaining{Seconds: 20}.String())
	assert.Equal(t, "01:05", Remaining{Minutes: 1, Seconds: 5}.String())
	assert.Equal(t, "120:00", Remaining{Minutes: 120}.String())
}

func TestRemainingStep(t *testing.T) {
	assert.Equal(t, Remaining{Seconds: 19}, Remaining{Seconds: 20}.step())
	assert.Equal(t, Remaining{Seconds: 59}, Remaining{Minutes: 1}.step())
	assert.Equal(t, Remaining{}, Remaining{}.step())
}

func TestParseRemaining(t *testing.T) {
	tests := []struct {
		in      string
		want    Remaining
		wantErr bool
	}{
		{in: "00:20", want: Remaining{Seconds: 20}},
		{in: " 2:05 ", want: Remaining{Minutes: 2, Seconds: 5}},
		{in: "90", want: Remaining{Minutes: 1, Seconds: 30}},
		{in: "0:60", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "aa:10", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRemaining(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFromDuration(t *testing.T) {
	assert.Equal(t, Remaining{Minutes: 1, Seconds: 1}, FromDuration(61*time.Second+400*time.Millisecond))
	assert.Equal(t, Remaining{}, FromDuration(-time.Second))
}

func TestValidateNegative(t *testing.T) {
	err := Remaining{Minutes: 0, Seconds: -1}.Validate()
	assert.True(t, errors.Is(err, ErrNegativeDuration))
	_, err = New(Remaining{Minutes: -2})
	assert.ErrorIs(t, err, ErrNegativeDuration)
}

func TestValidateRejectsSecondsOverflow(t *testing.T) {
	_, err := New(Remaining{Minutes: 1, Seconds: 75})
	assert.ErrorIs(t, err, ErrInvalidRemaining)
	assert.NoError(t, Remaining{Minutes: 1, Seconds: 59}.Validate())
	assert.NoError(t, FromDuration(135*time.Second).Validate())
}
