package leads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_PerClientBurst(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(time.Minute, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestLimiter_Prune(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	l := NewLimiter(time.Second, 1)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(5 * time.Second)
	l.Allow("b")
	now = now.Add(6 * time.Second)

	assert.Equal(t, 1, l.Prune())
	assert.Len(t, l.clients, 1)
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, 10, PhoneDigits("+91"))
	assert.Equal(t, 8, PhoneDigits("+65"))
	assert.Equal(t, 10, PhoneDigits("+000"))
	assert.Equal(t, "+91 9876543210", FormatPhone(" +91", "9876543210 "))
}
