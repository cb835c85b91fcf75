package builder

// readyMsg signals that rendering collaborators are available.
type readyMsg struct{}

// clearToastMsg hides the toast with the given sequence number.
type clearToastMsg struct {
	seq int
}

// savedMsg reports a file written by an export.
type savedMsg struct {
	path string
}

// errMsg reports a failure that happened outside the session.
type errMsg struct {
	err error
}
