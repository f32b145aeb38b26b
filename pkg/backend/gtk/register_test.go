//go:build !gtk

package gtk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

func TestRegisteredBetweenQtAndTextMode(t *testing.T) {
	var reg *yui.Registration
	for _, r := range yui.Registrations() {
		if r.Name == Name {
			reg = &r
		}
	}
	require.NotNil(t, reg)
	assert.Equal(t, 20, reg.Priority)
	assert.False(t, reg.Probe())
}

func TestStubRefusesToStart(t *testing.T) {
	_, err := newBackend(nil)
	require.Error(t, err)
	assert.True(t, yerrors.IsCode(err, yerrors.ErrCodeNoBackend))
}

func TestPartialKindSet(t *testing.T) {
	assert.False(t, Supports(yui.KindDumbTab))
	assert.False(t, Supports(yui.KindDateField))
	assert.True(t, Supports(yui.KindTree))
	assert.True(t, Supports(yui.KindRichText))
}
