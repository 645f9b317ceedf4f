package types

// ---- HAL contracts consumed by the bring-up core ----

// BusTransport is a shared, mutually exclusive serial bus.
type BusTransport interface {
	// Acquire takes exclusive ownership. It fails if the bus is already held.
	Acquire() (BusHandle, error)
}

// BusHandle is live ownership of the bus. It MUST be released.
type BusHandle interface {
	// Configure sets clock rate, polarity, phase and bit order for the
	// transactions that follow.
	Configure(cfg SPIConfig) error
	// Transact sends w while cs is asserted, then deasserts cs.
	Transact(cs ChipSelect, w []byte) error
	// Release gives the bus back. Calling it twice is a no-op.
	Release()
}

// OutputPin is a binary GPIO output with level readback.
type OutputPin interface {
	Set(level bool) error
	Get() bool
}
