package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitTimeFromSlot(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local)

	visit, ok := visitTimeFromSlot(now, "今日 09:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local), visit)

	visit, ok = visitTimeFromSlot(now, "明日 20:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 20, 0, 0, 0, time.Local), visit)

	visit, ok = visitTimeFromSlot(now, "9/2 14:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 2, 14, 0, 0, 0, time.Local), visit)

	_, ok = visitTimeFromSlot(now, "昨日 09:00")
	assert.False(t, ok)
	_, ok = visitTimeFromSlot(now, "garbage")
	assert.False(t, ok)
}
