// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrUnsupportedSampleRate = errors.New("unsupported sample rate")
	ErrUnsupportedChannels   = errors.New("unsupported channel count")
	ErrUnsupportedBitDepth   = errors.New("unsupported bit depth")
	ErrUnsupportedBitrate    = errors.New("unsupported bitrate")
	ErrUnsupportedQuality    = errors.New("unsupported quality")
)
