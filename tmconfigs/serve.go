package tmconfigs

import (
	"runtime"

	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/vars"
)

type ListenAddr string

var _ configs.Configurable = ListenAddr("")

func (ListenAddr) ConfigExpr() string {
	return "listen_addr"
}

var listenAddrFlag = cmds.Var[string]("-listen")

func (Module) ListenAddr(
	loader configs.Loader,
) ListenAddr {
	return vars.FirstNonZero(
		ListenAddr(*listenAddrFlag),
		configs.FirstOf[ListenAddr](loader),
		"127.0.0.1:8080",
	)
}

// MaxConnections bounds concurrently accepted connections.
type MaxConnections int

var _ configs.Configurable = MaxConnections(0)

func (MaxConnections) ConfigExpr() string {
	return "max_connections"
}

var maxConnectionsFlag = cmds.Var[int]("-max-connections")

func (Module) MaxConnections(
	loader configs.Loader,
) MaxConnections {
	return MaxConnections(vars.FirstNonZero(
		*maxConnectionsFlag,
		int(configs.FirstOf[MaxConnections](loader)),
		64,
	))
}

// Parallelism bounds concurrent runs in a batch.
type Parallelism int

var _ configs.Configurable = Parallelism(0)

func (Parallelism) ConfigExpr() string {
	return "parallelism"
}

var parallelismFlag = cmds.Var[int]("-parallelism")

func (Module) Parallelism(
	loader configs.Loader,
) Parallelism {
	return Parallelism(vars.FirstNonZero(
		max(*parallelismFlag, 0),
		int(configs.FirstOf[Parallelism](loader)),
		runtime.NumCPU(),
	))
}
