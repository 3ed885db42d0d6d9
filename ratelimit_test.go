package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashIP(t *testing.T) {
	l := newClientLimiter(5, 3)

	h := l.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, l.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, l.hashIP("203.0.113.8"))
	assert.NotEqual(t, h, newClientLimiter(5, 3).hashIP("203.0.113.7"), "salt differs per limiter")
}

func TestClientLimiterBurstAndRefill(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newClientLimiter(6, 2) // one token every 10s
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
	assert.True(t, l.allow("b"), "clients have separate buckets")

	now = now.Add(10 * time.Second)
	assert.True(t, l.allow("a"))
	assert.False(t, l.allow("a"))
}

func TestClientLimiterEvictsIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := newClientLimiter(5, 1)
	l.now = func() time.Time { return now }

	l.allow("a")
	l.allow("b")
	assert.Equal(t, 2, l.size())

	now = now.Add(limiterIdleTTL + time.Second)
	l.allow("c")
	assert.Equal(t, 1, l.size())
}
