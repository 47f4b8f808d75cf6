package list

// listError is the panic value for a misuse of the list detected in debug
// builds.
type listError string

func (e listError) Error() string { return "list: " + string(e) }

// fail reports a violated precondition. Built without the listdebug tag it
// does nothing and the caller ignores the offending operation.
func fail(msg string) {
	if debug {
		panic(listError(msg))
	}
}
