package core

// Color represents the options for enabling or disabling color output.
type Color int

const (
	ColorUnknown Color = iota
	ColorAuto
	ColorOn
	ColorOff
)

// PointerTo returns a pointer to the provided value.
func PointerTo[T any](t T) *T {
	return &t
}
