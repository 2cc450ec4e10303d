package errstore

// StatusEmitter sets the HTTP status of the response being built.
type StatusEmitter interface {
	EmitStatus(status int)
}

// StatusEmitterFunc adapts a function to StatusEmitter.
type StatusEmitterFunc func(status int)

// EmitStatus calls f(status).
func (f StatusEmitterFunc) EmitStatus(status int) {
	f(status)
}
