package main

import (
	"github.com/gnumonik/plutus/configs"
	"github.com/gnumonik/plutus/debugs"
	"github.com/gnumonik/plutus/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Debugs  debugs.Module
	Logs    logs.Module
}
