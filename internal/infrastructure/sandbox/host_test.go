package sandbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHost(t *testing.T) {
	h := NewHost(NewChallengePresenter())
	assert.Nil(t, h.Current())

	a := h.Attach("a1")
	a.show(Surface{Kind: SurfacePaymentSheet, RequestCode: 991})
	assert.Same(t, a, h.Attach("a1"), "reattaching the same activity keeps it")
	assert.Len(t, h.Current().Surfaces(), 1)

	b := h.Attach("b1")
	assert.NotSame(t, a, b)
	assert.Empty(t, b.Surfaces())

	assert.Same(t, b, h.Detach())
	assert.Nil(t, h.Current())
	assert.NotNil(t, h.Presenter())
}
