// SPDX-License-Identifier: EPL-2.0

// Package listen reads keyed Morse audio back into a Morse string.
//
// The input is mixed to mono and resampled to the analysis rate, then cut
// into short windows. A window is key-down when its mean absolute amplitude
// reaches Threshold times the loudest window. Consecutive windows collapse
// into on and off runs, which are classified against the unit length:
//
//	on  < 2 units  dot
//	on >= 2 units  dash
//	off < 2 units  gap inside a letter
//	off < 5 units  letter break " "
//	off >= 5 units word break " / "
//
// The unit is Config.Unit when set, otherwise the shortest run found. A
// message made only of dashes has no shorter run to compare against and
// reads as dots, so set Unit when the keying speed is known.
//
//	morse, err := listen.Detect(src)
//	text := code.Decode(morse)
package listen
