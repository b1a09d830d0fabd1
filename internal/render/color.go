package render

import (
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	hexCache sync.Map // string -> colorful.Color
	seqCache sync.Map // seqKey -> string
)

type seqKey struct {
	profile termenv.Profile
	rgb     uint32
}

// parseColor falls back to white for unparseable input; config validation
// has already rejected bad accent colors by the time we draw.
func parseColor(hex string) colorful.Color {
	if c, ok := hexCache.Load(hex); ok {
		return c.(colorful.Color)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 1, G: 1, B: 1}
	}
	hexCache.Store(hex, c)
	return c
}

func rgbKey(c colorful.Color) uint32 {
	r, g, b := c.Clamped().RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

func colorSequence(profile termenv.Profile, c colorful.Color) string {
	key := seqKey{profile: profile, rgb: rgbKey(c)}
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}
	seq := ""
	if body := profile.Color(c.Clamped().Hex()).Sequence(false); body != "" {
		seq = termenv.CSI + body + "m"
	}
	seqCache.Store(key, seq)
	return seq
}

// ansiState suppresses repeated color sequences within a row.
type ansiState struct {
	profile termenv.Profile
	current uint32
	active  bool
}

func newANSIState(profile termenv.Profile) ansiState {
	return ansiState{profile: profile}
}

func (s *ansiState) set(sb *strings.Builder, c colorful.Color) {
	if s.profile == termenv.Ascii {
		return
	}
	key := rgbKey(c)
	if s.active && key == s.current {
		return
	}
	seq := colorSequence(s.profile, c)
	if seq == "" {
		return
	}
	sb.WriteString(seq)
	s.current = key
	s.active = true
}

func (s *ansiState) reset(sb *strings.Builder) {
	if !s.active {
		return
	}
	sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	s.active = false
}
