// SPDX-License-Identifier: EPL-2.0

package listen

import "errors"

// ErrNoSignal is returned for input that is empty or silent.
var ErrNoSignal = errors.New("no keyed signal in audio")
