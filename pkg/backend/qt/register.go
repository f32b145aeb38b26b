// Package qt is the Qt backend, built on the miqt bindings. The toolkit
// code is compiled only with the "qt" build tag; without it the backend
// registers but never probes available.
package qt

import (
	"github.com/odvcencio/yui/pkg/config"
	"github.com/odvcencio/yui/pkg/yui"
)

// Name is the registered backend name.
const Name = config.BackendQt

func init() {
	yui.RegisterBackend(yui.Registration{
		Name:     Name,
		Priority: 10,
		Probe:    available,
		New:      newBackend,
	})
}
