package cmds

// Var defines name to set the returned value from the next argument, and
// name followed by a dot to reset it to zero.
func Var[T any](name string, usage string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}).Desc(usage))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}).Desc("reset "+name))
	return value
}

// Switch defines name to turn the returned value on and !name to turn it off.
func Switch(name string, usage string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}).Desc(usage))
	Define("!"+name, Func(func() {
		*value = false
	}).Desc("disable "+name))
	return value
}

// Collect defines name to append the next argument to the returned slice.
// It may be given any number of times.
func Collect[T any](name string, usage string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}).Desc(usage+" (repeatable)"))
	return values
}
