// Package all registers every backend. Programs import it for its side
// effects:
//
//	import _ "github.com/odvcencio/yui/pkg/backend/all"
package all

import (
	_ "github.com/odvcencio/yui/pkg/backend/gtk"
	_ "github.com/odvcencio/yui/pkg/backend/ncurses"
	_ "github.com/odvcencio/yui/pkg/backend/qt"
)
