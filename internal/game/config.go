package game

// Config holds run options read from the environment at startup.
type Config struct {
	// Seed for the session RNG. 0 picks a time-based seed.
	Seed int64
	// Debug enables the position/node overlay on the overworld.
	Debug bool
}
