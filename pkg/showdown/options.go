package showdown

// Options contains options for creating a new session
type Options struct {
	// StartingTokens is the balance a session starts (and restarts) with
	StartingTokens int
	// Name is the player's display name. A random name is used if empty
	Name string
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingTokens: 100,
	}
}
