package runtime

// Initializer is implemented by components that need setup before their
// first render, such as picking initial state.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that derive state from
// their props before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// PropUpdater copies props from a freshly constructed component onto the
// preserved instance when a child is re-rendered.
type PropUpdater interface {
	ApplyProps(from Component)
}
