package debugs

import (
	"github.com/gnumonik/plutus/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
