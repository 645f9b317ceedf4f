//go:build !(stm32f4 || rp2040 || rp2350) && !(linux && periph)

package boards

// Host builds run against in-memory fakes; the names only label them.
var Selected = Board{
	Name:     "host",
	SPI:      "spi0",
	CSMux:    "CS0",
	CSDirect: "CS1",
	MuxS0:    "S0",
	MuxS1:    "S1",
	LED:      "LED",
}
