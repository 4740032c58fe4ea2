// SPDX-License-Identifier: EPL-2.0

package audiohelper

import "errors"

var (
	ErrNotPCMFile    = errors.New("input is not a .pcm file")
	ErrUnknownFormat = errors.New("unknown target format")
)
