package configs

// Configurable is implemented by typed configuration values.
// ConfigExpr returns the CUE path the value is read from.
type Configurable interface {
	ConfigExpr() string
}

// FirstOf reads the first value at the path named by T's ConfigExpr.
func FirstOf[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}
