package models

import "strings"

// Tone selects the phrasing style of the generated commit message.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneConcise      Tone = "Concise"
	ToneFun          Tone = "Fun/Creative"
	ToneConventional Tone = "Conventional Commits"
)

// DefaultTone is the tone preselected in every UI.
const DefaultTone = ToneConventional

var toneAliases = map[string]Tone{
	"professional": ToneProfessional,
	"concise":      ToneConcise,
	"fun":          ToneFun,
	"creative":     ToneFun,
	"conventional": ToneConventional,
}

// Tones returns the supported tones in display order.
func Tones() []Tone {
	return []Tone{
		ToneProfessional,
		ToneConcise,
		ToneFun,
		ToneConventional,
	}
}

func (t Tone) String() string {
	return string(t)
}

// IsValid reports whether t is one of the four supported labels.
func (t Tone) IsValid() bool {
	for _, tone := range Tones() {
		if t == tone {
			return true
		}
	}
	return false
}

// ParseTone accepts a label (case-insensitive) or one of the short keys used
// on the command line.
func ParseTone(s string) (Tone, bool) {
	s = strings.TrimSpace(s)
	for _, tone := range Tones() {
		if strings.EqualFold(s, string(tone)) {
			return tone, true
		}
	}
	if tone, ok := toneAliases[strings.ToLower(s)]; ok {
		return tone, true
	}
	return "", false
}
