//go:build rp2040 || rp2350

package boards

// Pico / Pico 2 bench adapter. Onboard LED is GP25; the console is UART0.
var Selected = Board{
	Name:        "pico_rf_bench",
	SPI:         "spi0",
	SCK:         "GP18",
	SDO:         "GP19",
	SDI:         "GP16",
	CSMux:       "GP17",
	CSDirect:    "GP20",
	MuxS0:       "GP21",
	MuxS1:       "GP22",
	LED:         "GP25",
	ConsoleTX:   "GP0",
	ConsoleRX:   "GP1",
	ConsoleBaud: 115200,
}
