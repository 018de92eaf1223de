package command

// Decision is a guard's verdict. The zero value is undecided, which the dispatcher treats as a
// denial. A denial always outranks an authorization, whatever order they were recorded in.
type Decision struct {
	allowed bool
	denied  bool
	reason  string
}

func Authorized() Decision {
	return Decision{allowed: true}
}

// Denied returns a denial. An empty reason means none was given.
func Denied(reason string) Decision {
	return Decision{denied: true, reason: reason}
}

func (d Decision) Allow() Decision {
	d.allowed = true
	return d
}

func (d Decision) Deny(reason string) Decision {
	if !d.denied {
		d.reason = reason
	}
	d.denied = true

	return d
}

func (d Decision) IsDenied() bool {
	return d.denied
}

func (d Decision) IsUndecided() bool {
	return !d.denied && !d.allowed
}

// Permits reports whether the command may run.
func (d Decision) Permits() bool {
	return d.allowed && !d.denied
}

func (d Decision) Reason() string {
	return d.reason
}
