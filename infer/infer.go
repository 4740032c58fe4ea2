// SPDX-License-Identifier: EPL-2.0

package infer

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/EchoNoReturn/audio-helper/config"
)

// Fields records which configuration fields were recognized in the filename
// as opposed to filled with defaults.
type Fields struct {
	SampleRate    bool
	Channels      bool
	BitsPerSample bool
}

// Result is an inferred configuration plus the per-field provenance.
// The embedded config is always valid.
type Result struct {
	Config  config.Audio
	Matched Fields
}

// candidate is one recognized token occurrence: its position in the
// filename and the value it encodes.
type candidate struct {
	pos   int
	value int
}

// Infer derives a PCM configuration from a loosely structured filename.
//
// Each field class is matched independently over the whole string, so token
// order and delimiters do not matter: "audio_48k16bit单声道.pcm" and
// "voice-48k-16bits-mono.pcm" infer identically. When several candidates
// exist for one field, the leftmost valid one wins; candidates carrying
// unsupported values are skipped. Unmatched fields fall back to the
// defaults (44100 Hz, 2 channels, 16 bit), so Infer is total: it never
// fails, for any input string.
func Infer(filename string) Result {
	name := strings.ToLower(filename)
	res := Result{Config: config.DefaultAudio()}

	if rate, ok := firstWhere(rateCandidates(name), config.SampleRateSupported); ok {
		res.Config.SampleRate = rate
		res.Matched.SampleRate = true
	}

	if bits, ok := firstWhere(bitDepthCandidates(name), supportedBitDepth); ok {
		res.Config.BitsPerSample = bits
		res.Matched.BitsPerSample = true
	}

	if ch, ok := firstWhere(channelCandidates(name), nil); ok {
		res.Config.Channels = ch
		res.Matched.Channels = true
	}

	return res
}

// firstWhere reduces a position-ordered candidate list to the leftmost
// value accepted by valid. A nil valid accepts everything.
func firstWhere(cands []candidate, valid func(int) bool) (int, bool) {
	for _, c := range cands {
		if valid == nil || valid(c.value) {
			return c.value, true
		}
	}
	return 0, false
}

func supportedBitDepth(bits int) bool {
	return bits == 16 || bits == 24
}

var (
	// "8k", "48K", "44.1k": a decimal point is permitted only in the k form.
	kiloRateRe = regexp.MustCompile(`(\d+(?:\.\d+)?)k`)
	// "44100hz", "96000Hz": a bare 5-6 digit number directly followed by hz.
	hzRateRe = regexp.MustCompile(`(?:\A|[^\d.])(\d{5,6})hz`)
	// "16bit", "24bits": an integer immediately followed by bit/bits.
	bitDepthRe = regexp.MustCompile(`(\d+)bits?`)
)

// rateCandidates scans name (already lowercased) for sample-rate tokens and
// returns them in positional order. Both the k-suffixed and the Hz-suffixed
// pattern classes contribute.
func rateCandidates(name string) []candidate {
	var cands []candidate

	for _, m := range kiloRateRe.FindAllStringSubmatchIndex(name, -1) {
		tok := name[m[2]:m[3]]
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || f <= 0 || f > 1e6 {
			continue
		}
		cands = append(cands, candidate{pos: m[2], value: int(math.Round(f * 1000))})
	}

	for _, m := range hzRateRe.FindAllStringSubmatchIndex(name, -1) {
		v, err := strconv.Atoi(name[m[2]:m[3]])
		if err != nil {
			continue
		}
		cands = append(cands, candidate{pos: m[2], value: v})
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].pos < cands[j].pos })
	return cands
}

// bitDepthCandidates scans name for bit-depth tokens in positional order.
// Values outside {16, 24} stay in the list and are filtered by the caller.
func bitDepthCandidates(name string) []candidate {
	var cands []candidate
	for _, m := range bitDepthRe.FindAllStringSubmatchIndex(name, -1) {
		v, err := strconv.Atoi(name[m[2]:m[3]])
		if err != nil {
			continue
		}
		cands = append(cands, candidate{pos: m[2], value: v})
	}
	return cands
}

// channelTokens is the channel vocabulary, mixed-language. Extending the
// vocabulary means appending here; earlier entries win position ties.
var channelTokens = []struct {
	token    string
	channels int
}{
	{"单声道", 1},
	{"双声道", 2},
	{"立体声", 2},
	{"mono", 1},
	{"stereo", 2},
	{"1ch", 1},
	{"2ch", 2},
}

// channelCandidates returns every channel-token occurrence in positional
// order.
func channelCandidates(name string) []candidate {
	var cands []candidate
	for _, t := range channelTokens {
		if i := strings.Index(name, t.token); i >= 0 {
			cands = append(cands, candidate{pos: i, value: t.channels})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].pos < cands[j].pos })
	return cands
}
