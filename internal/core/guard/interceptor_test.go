package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeHistory counts capture entries like a browser history stack would.
type fakeHistory struct {
	depth int
}

func (h *fakeHistory) Push() { h.depth++ }
func (h *fakeHistory) Pop()  { h.depth-- }

func TestInterceptor_EnableIsIdempotent(t *testing.T) {
	h := &fakeHistory{}
	i := NewInterceptor(h, New(nil))

	i.Enable()
	i.Enable()
	i.Enable()
	assert.Equal(t, 1, h.depth, "repeated enables must not stack capture entries")
	assert.True(t, i.Enabled())
}

func TestInterceptor_DisableReleasesCapture(t *testing.T) {
	h := &fakeHistory{}
	i := NewInterceptor(h, New(nil))

	i.Enable()
	i.Disable()
	i.Disable()
	assert.Equal(t, 0, h.depth)
	assert.False(t, i.Enabled())

	// Re-enabling does not accumulate extra entries.
	i.Enable()
	assert.Equal(t, 1, h.depth)
}

func TestInterceptor_BackSignalRaisesExitRequest(t *testing.T) {
	h := &fakeHistory{}
	g := New(map[string]string{"defect": ""})
	g.SetField("defect", "cracked glass")
	i := NewInterceptor(h, g)
	i.Enable()

	// The host pops the capture entry when back fires, then notifies us.
	h.Pop()
	assert.Equal(t, DecisionConfirm, i.HandleBack())
	assert.Equal(t, 1, h.depth, "capture re-armed after the signal")

	// A second back press while the confirmation is pending is captured
	// again and raises exactly one more request, never slipping through.
	h.Pop()
	assert.Equal(t, DecisionConfirm, i.HandleBack())
	assert.Equal(t, 1, h.depth)
	assert.Equal(t, StateConfirming, g.State())
}

func TestInterceptor_CleanGuardAllowsExit(t *testing.T) {
	h := &fakeHistory{}
	g := New(nil)
	i := NewInterceptor(h, g)
	i.Enable()

	h.Pop()
	assert.Equal(t, DecisionClose, i.HandleBack())
}

func TestInterceptor_DisabledIgnoresBack(t *testing.T) {
	h := &fakeHistory{}
	i := NewInterceptor(h, New(nil))

	assert.Equal(t, DecisionNone, i.HandleBack())
	assert.Equal(t, 0, h.depth)
}
