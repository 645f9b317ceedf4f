// Package drivers renders register frames for the chips on the RF front end.
package drivers

import (
	"rfbringup-go/drivers/ada8282"
	"rfbringup-go/drivers/adf4159"
	"rfbringup-go/drivers/adf4355"
	"rfbringup-go/types"
)

// Describe decodes a frame written to family f. Unknown families get "".
func Describe(f types.DeviceFamily, fr types.Frame) string {
	switch f {
	case types.SynthesizerA:
		return adf4159.Describe(fr)
	case types.SynthesizerB:
		return adf4355.Describe(fr)
	case types.GainStageA, types.GainStageB:
		return ada8282.Describe(fr)
	default:
		return ""
	}
}
