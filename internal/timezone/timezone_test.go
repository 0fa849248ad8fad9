package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	svc, err := New("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", svc.Reference().String())

	_, err = New("Mars/Olympus_Mons")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestConvertKeepsInstant(t *testing.T) {
	svc, err := New("Asia/Kolkata")
	require.NoError(t, err)

	ist := svc.Reference()
	// 18:30 IST == 13:00 UTC == 09:00 in New York (EDT).
	in := time.Date(2025, 6, 10, 18, 30, 0, 0, ist)

	out, err := svc.Convert(in, "America/New_York")
	require.NoError(t, err)

	assert.True(t, out.Equal(in))
	assert.Equal(t, 9, out.Hour())
	assert.Equal(t, 0, out.Minute())
}

func TestConvertInvalidTimezone(t *testing.T) {
	svc, err := New("Asia/Kolkata")
	require.NoError(t, err)

	_, err = svc.Convert(time.Now(), "Not/A_Zone")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestParseInReference(t *testing.T) {
	svc, err := New("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("with offset", func(t *testing.T) {
		got, err := svc.ParseInReference("2025-06-10T13:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 18, got.Hour())
		assert.Equal(t, 30, got.Minute())
	})

	t.Run("naive value uses reference wall time", func(t *testing.T) {
		got, err := svc.ParseInReference("2025-06-10T08:00:00")
		require.NoError(t, err)
		assert.Equal(t, 8, got.Hour())
		assert.Equal(t, svc.Reference(), got.Location())
	})

	t.Run("garbage rejected", func(t *testing.T) {
		_, err := svc.ParseInReference("tomorrow at eight")
		assert.Error(t, err)
	})
}
