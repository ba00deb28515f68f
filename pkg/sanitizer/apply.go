package sanitizer

// Func normalizes one string value.
type Func func(string) string

// Chain returns a Func that runs fns from left to right.
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}
