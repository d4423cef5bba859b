package nets

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
)

// Module provides the HTTP client used to load descriptions from URLs.
type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
