package check

// Capabilities describes what the current session may do.
type Capabilities struct {
	CanWrite bool
}

// ReadOnly is the capability set of a demo session.
var ReadOnly = Capabilities{}

// ReadWrite allows every change.
var ReadWrite = Capabilities{CanWrite: true}

// RequireWrite returns ErrReadOnly unless the capabilities allow writes.
func (c Capabilities) RequireWrite() error {
	if !c.CanWrite {
		return ErrReadOnly
	}

	return nil
}
