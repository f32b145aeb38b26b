// Package gtk is the GTK 4 backend, built on the gotk4 bindings. It is a
// partial backend: tab bars and the date and time fields are not
// offered, and the optional widget factory reports them missing. The
// toolkit code is compiled only with the "gtk" build tag.
package gtk

import (
	"github.com/odvcencio/yui/pkg/config"
	"github.com/odvcencio/yui/pkg/yui"
)

// Name is the registered backend name.
const Name = config.BackendGTK

// supported is every kind except the ones GTK leaves out.
var supported = yui.AllKindsExcept(yui.KindDumbTab, yui.KindDateField, yui.KindTimeField)

// Supports reports whether the GTK backend implements kind.
func Supports(kind yui.WidgetKind) bool { return supported.Has(kind) }

func init() {
	yui.RegisterBackend(yui.Registration{
		Name:     Name,
		Priority: 20,
		Probe:    available,
		New:      newBackend,
	})
}
