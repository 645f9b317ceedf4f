//go:build linux && periph && !(stm32f4 || rp2040 || rp2350)

package boards

// Raspberry Pi header: spidev0.0 with kernel-driven CE0 as the shared select.
var Selected = Board{
	Name:     "rpi_rf_bench",
	SPI:      "/dev/spidev0.0",
	CSDirect: "GPIO25",
	MuxS0:    "GPIO22",
	MuxS1:    "GPIO23",
	LED:      "GPIO24",
}
