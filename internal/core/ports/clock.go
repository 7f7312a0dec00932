package ports

// Clock is the tick source used to time checksum routines.
type Clock interface {
	// Now returns the current reading in ticks. Only differences between
	// two readings are meaningful.
	Now() int64

	// Frequency returns the number of ticks per second.
	Frequency() int64
}
