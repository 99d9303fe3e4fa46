package commands

// WithEnviron replaces the inherited environment of c for testing.
func WithEnviron(c *FreezeCommand, environ []string) *FreezeCommand {
	c.environ = func() []string { return environ }
	return c
}
