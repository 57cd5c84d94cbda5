package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Schema constrains plutus.cue files. Unknown fields are rejected.
const Schema = `
plc?: {
	startHandle?: int & >=0
	dumpTokens?:  bool
}
`

// Options is the decoded plc section of the config.
type Options struct {
	StartHandle int  `json:"startHandle"`
	DumpTokens  bool `json:"dumpTokens"`
}

// Loader finds plutus.cue in the usual places: system-wide, per-user, then
// the working directory. Later call sites see the working directory file
// first, so the most local config wins.
func (Module) Loader() Loader {
	var paths []string

	add := func(dir string) {
		path := filepath.Join(dir, "plutus.cue")
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	if workingDir, err := os.Getwd(); err == nil {
		add(workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		add(configDir)
	}
	add("/etc")

	return NewLoader(paths, Schema)
}

func (Module) Options(
	loader Loader,
) Options {
	return First[Options](loader, "plc")
}
