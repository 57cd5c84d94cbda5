package cmds

// the process-wide executor, shared by packages that register flags in init
var defaultExecutor = NewExecutor()

func Define(name string, command *Command) {
	defaultExecutor.Define(name, command)
}

func Execute(args []string) error {
	return defaultExecutor.Execute(args)
}

func MustExecute(args []string) {
	defaultExecutor.MustExecute(args)
}

func PrintUsage() {
	defaultExecutor.PrintUsage()
}
