//go:build stm32f4

package boards

// Olimex STM32-E407. SPI1 on PA5/PA6/PA7 with software NSS on PA4; the
// multiplexer address lines are on port G of the UEXT/extension header.
var Selected = Board{
	Name:        "stm32_e407",
	SPI:         "spi1",
	SCK:         "PA5",
	SDO:         "PA7",
	SDI:         "PA6",
	CSMux:       "PA4",
	CSDirect:    "PG2",
	MuxS0:       "PG0",
	MuxS1:       "PG1",
	LED:         "PC13",
	ConsoleBaud: 115200,
}
