package all

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/yui/pkg/yui"
)

func TestProbeOrder(t *testing.T) {
	var names []string
	for _, r := range yui.Registrations() {
		if !r.Manual {
			names = append(names, r.Name)
		}
	}
	assert.Equal(t, []string{"qt", "gtk", "ncurses"}, names)
}
