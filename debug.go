package envkit

// DebugKey is the predefined boolean context key backing Environment.IsDebug.
var DebugKey = NewKey[bool]("debug")

// DebugContext returns a builder preconfigured with the conventional debug
// mapping: true in Dev, false everywhere else. Callers may adjust it before
// building, e.g. DebugContext().Set(envkit.Test, true).Build().
func DebugContext() *ContextBuilder[bool] {
	return NewContext(DebugKey).Set(Dev, true).SetDefault(false)
}

// IsDebug reports whether the debug context resolves to true under the
// current tag. Environments without a registered debug context are never
// debug.
func (e *Environment) IsDebug() bool {
	v, _ := CurrentValue(e, DebugKey)
	return v
}
