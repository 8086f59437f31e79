// SPDX-License-Identifier: EPL-2.0

package synth

import "time"

// Segment is a run of tone or silence.
type Segment struct {
	Tone     bool
	Duration time.Duration
}

// Schedule holds the tone frequency and element durations.
type Schedule struct {
	Frequency float64 // Hz

	Dot  time.Duration
	Dash time.Duration
	// Gap follows every dot and dash.
	Gap time.Duration
	// LetterGap is the silence for a ' ' between letters.
	LetterGap time.Duration
	// WordGap is the silence for a '/' between words.
	WordGap time.Duration
}

const defaultWPM = 20

// DefaultSchedule is 800 Hz with a 100 ms dot.
func DefaultSchedule() Schedule {
	return Schedule{
		Frequency: 800,
		Dot:       100 * time.Millisecond,
		Dash:      300 * time.Millisecond,
		Gap:       100 * time.Millisecond,
		LetterGap: 300 * time.Millisecond,
		WordGap:   700 * time.Millisecond,
	}
}

// ScheduleFromWPM derives PARIS timing for wpm words per minute: one unit is
// 1200ms/wpm, a dash three units. The space and slash each add two units so
// that, with the trailing element gap, letters are three units apart and
// words seven. wpm <= 0 selects 20.
func ScheduleFromWPM(wpm int, frequency float64) Schedule {
	if wpm <= 0 {
		wpm = defaultWPM
	}
	unit := 1200 * time.Millisecond / time.Duration(wpm)

	return Schedule{
		Frequency: frequency,
		Dot:       unit,
		Dash:      3 * unit,
		Gap:       unit,
		LetterGap: 2 * unit,
		WordGap:   2 * unit,
	}
}

// Segments returns the plan for one Morse character.
func (s Schedule) Segments(symbol rune) []Segment {
	switch symbol {
	case '.':
		return []Segment{{Tone: true, Duration: s.Dot}, {Duration: s.Gap}}
	case '-':
		return []Segment{{Tone: true, Duration: s.Dash}, {Duration: s.Gap}}
	case ' ':
		return []Segment{{Duration: s.LetterGap}}
	case '/':
		return []Segment{{Duration: s.WordGap}}
	}
	return nil
}

// Duration is the total playing time of morse.
func (s Schedule) Duration(morse string) time.Duration {
	var total time.Duration
	for _, r := range morse {
		for _, seg := range s.Segments(r) {
			total += seg.Duration
		}
	}
	return total
}

func sampleCount(d time.Duration, sampleRate int) int {
	return int(int64(d) * int64(sampleRate) / int64(time.Second))
}
