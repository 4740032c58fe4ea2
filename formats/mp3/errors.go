// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	ErrEncoder       = errors.New("mp3 encoder failure")
	ErrUnalignedPCM  = errors.New("PCM byte length not aligned to frame size")
	ErrRequires16Bit = errors.New("mp3 encoding requires 16-bit PCM")
)
