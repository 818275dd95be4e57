package debounce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpSupersedesEarlierGenerations(t *testing.T) {
	t.Parallel()
	d := New("users", 300*time.Millisecond)

	// Three quick keystrokes: "a", "ab", "abc". Each bump invalidates the
	// previous generation; only the last one is live when its timer elapses.
	gen1, cmd1 := d.Bump()
	gen2, cmd2 := d.Bump()
	gen3, cmd3 := d.Bump()
	require.NotNil(t, cmd1)
	require.NotNil(t, cmd2)
	require.NotNil(t, cmd3)

	assert.False(t, d.Live("users", gen1))
	assert.False(t, d.Live("users", gen2))
	assert.True(t, d.Live("users", gen3))
}

func TestLiveChecksInstanceID(t *testing.T) {
	t.Parallel()
	d := New("users", 300*time.Millisecond)
	gen, _ := d.Bump()

	assert.True(t, d.Live("users", gen))
	assert.False(t, d.Live("tags", gen), "another instance's firing must not be honored")
}

func TestCancelInvalidatesWithoutScheduling(t *testing.T) {
	t.Parallel()
	d := New("users", 300*time.Millisecond)
	gen, _ := d.Bump()

	d.Cancel()
	assert.False(t, d.Live("users", gen), "cancel supersedes the pending firing")
	assert.Equal(t, gen+1, d.Gen())
}

func TestGensAreMonotonic(t *testing.T) {
	t.Parallel()
	d := New("users", time.Millisecond)

	prev := d.Gen()
	for i := 0; i < 5; i++ {
		gen, _ := d.Bump()
		require.Greater(t, gen, prev)
		prev = gen
	}
}
