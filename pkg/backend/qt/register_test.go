//go:build !qt

package qt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

func TestRegisteredFirst(t *testing.T) {
	regs := yui.Registrations()
	require.NotEmpty(t, regs)
	assert.Equal(t, Name, regs[0].Name)
	assert.Equal(t, 10, regs[0].Priority)
	assert.False(t, regs[0].Probe())
}

func TestStubRefusesToStart(t *testing.T) {
	_, err := newBackend(nil)
	require.Error(t, err)
	assert.True(t, yerrors.IsCode(err, yerrors.ErrCodeNoBackend))
}
