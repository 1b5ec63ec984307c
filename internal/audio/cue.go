package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Tone is a single enveloped note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

// Note schedules a tone Delay after the cue starts.
type Note struct {
	Tone  Tone
	Delay time.Duration
}

const (
	toneAttack  = 5 * time.Millisecond
	toneRelease = 30 * time.Millisecond
)

// cueNotes lists the (tone, delay) sequence for each cue.
var cueNotes = map[core.Cue][]Note{
	core.CueShoot: {
		{Tone: Tone{Freq: 880, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.25}},
	},
	core.CuePowerShoot: {
		{Tone: Tone{Freq: 880, Duration: 50 * time.Millisecond, Wave: WaveSquare, Gain: 0.25}},
		{Tone: Tone{Freq: 1320, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.25}, Delay: 40 * time.Millisecond},
	},
	core.CueEnemyShoot: {
		{Tone: Tone{Freq: 220, Duration: 80 * time.Millisecond, Wave: WaveSaw, Gain: 0.2}},
	},
	core.CueExplosion: {
		{Tone: Tone{Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.35}},
		{Tone: Tone{Freq: 90, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.4}},
	},
	core.CuePowerUp: {
		{Tone: Tone{Freq: 523.25, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.3}},
		{Tone: Tone{Freq: 659.25, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.3}, Delay: 80 * time.Millisecond},
		{Tone: Tone{Freq: 783.99, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.3}, Delay: 160 * time.Millisecond},
		{Tone: Tone{Freq: 1046.5, Duration: 160 * time.Millisecond, Wave: WaveSine, Gain: 0.3}, Delay: 240 * time.Millisecond},
	},
	core.CueGameOver: {
		{Tone: Tone{Freq: 392, Duration: 220 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}},
		{Tone: Tone{Freq: 329.63, Duration: 220 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}, Delay: 200 * time.Millisecond},
		{Tone: Tone{Freq: 261.63, Duration: 220 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}, Delay: 400 * time.Millisecond},
		{Tone: Tone{Freq: 196, Duration: 500 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}, Delay: 600 * time.Millisecond},
	},
}

// Notes returns the note sequence for a cue, or nil for an unknown cue.
func Notes(cue core.Cue) []Note {
	return cueNotes[cue]
}

// noteStreamer renders one note preceded by its delay.
func noteStreamer(n Note, rate beep.SampleRate) beep.Streamer {
	tone := newEnvelope(
		newOscillator(n.Tone.Freq, n.Tone.Duration, n.Tone.Wave, rate),
		n.Tone.Duration, toneAttack, toneRelease, rate,
	)
	tone = newVolume(tone, n.Tone.Gain)
	if n.Delay <= 0 {
		return tone
	}
	return beep.Seq(beep.Silence(rate.N(n.Delay)), tone)
}

// Compose mixes every note of a cue into one streamer scaled by volume.
// It returns nil for an unknown cue.
func Compose(cue core.Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := Notes(cue)
	if len(notes) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = noteStreamer(n, rate)
	}
	return newVolume(beep.Mix(parts...), volume)
}

// Length returns how long a cue plays, from its first note to the end of
// its last.
func Length(cue core.Cue) time.Duration {
	var end time.Duration
	for _, n := range Notes(cue) {
		end = max(end, n.Delay+n.Tone.Duration)
	}
	return end
}
