package boards

// Board is the wiring of the RF front-end carrier on one controller board:
// which SPI controller reaches the chips, which pins drive the select
// multiplexer, and where the console and status LED live.
//
// Pin names are in the platform's own scheme ("PG0" on STM32, "GP17" on
// RP2, "GPIO22" under periph). An empty select pin means the controller
// drives that line in hardware.
type Board struct {
	Name string

	SPI           string // controller id, e.g. "spi1"
	SCK, SDO, SDI string

	CSMux    string // shared select, routed through the multiplexer
	CSDirect string // dedicated select of the ADC
	MuxS0    string
	MuxS1    string

	LED string

	ConsoleTX, ConsoleRX string
	ConsoleBaud          uint32
}
