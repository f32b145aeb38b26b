//go:build !qt

package qt

import (
	yerrors "github.com/odvcencio/yui/pkg/errors"
	"github.com/odvcencio/yui/pkg/yui"
)

func available() bool { return false }

func newBackend(*yui.UI) (yui.Backend, error) {
	return nil, yerrors.New(yerrors.ErrCodeNoBackend, "built without Qt support; rebuild with -tags qt")
}
