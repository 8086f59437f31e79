// SPDX-License-Identifier: EPL-2.0

package code

import "errors"

var (
	ErrEmptyAlphabet   = errors.New("alphabet has no entries")
	ErrInvalidSymbol   = errors.New("symbol must be made of dots and dashes")
	ErrDuplicateSymbol = errors.New("symbol is mapped to more than one character")
)
