package configs

import "github.com/reusee/dscope"

// Module is embedded by modules that consume a Loader; the Loader itself is provided by the application.
type Module struct {
	dscope.Module
}
