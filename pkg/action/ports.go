package action

// Inputs reads named inputs from the hosting environment.
// Retrieval may fail, e.g. when a required input is missing.
type Inputs interface {
	Input(name string) (string, error)
}

// Reporter is the host's failure-signaling mechanism.
type Reporter interface {
	// Fail marks the run as failed with msg as the reason.
	Fail(msg string)
}
