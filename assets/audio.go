package assets

import (
	"bytes"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
)

// SFXSynth renders the configured cues to PCM and hands out a fresh
// player per play so overlapping effects mix. There are no audio
// files; every effect is a single swept oscillator.
type SFXSynth struct {
	context *audio.Context
	cache   map[cfg.SoundID][]byte
}

// NewSFXSynth creates a synthesizer rendering at the context rate.
func NewSFXSynth(ctx *audio.Context) *SFXSynth {
	return &SFXSynth{
		context: ctx,
		cache:   make(map[cfg.SoundID][]byte),
	}
}

// PreloadAll renders every configured cue. Call at startup to avoid
// synthesis lag on first play.
func (s *SFXSynth) PreloadAll() {
	for id := range cfg.Cues {
		s.pcm(id)
	}
}

// Player returns a new player for the cue, rendering it on first
// use. ok is false for cues with no tuning entry.
func (s *SFXSynth) Player(id cfg.SoundID) (*audio.Player, bool) {
	pcm, ok := s.pcm(id)
	if !ok {
		return nil, false
	}
	player, err := s.context.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return nil, false
	}
	return player, true
}

func (s *SFXSynth) pcm(id cfg.SoundID) ([]byte, bool) {
	if pcm, ok := s.cache[id]; ok {
		return pcm, true
	}
	cue, ok := cfg.Cues[id]
	if !ok {
		return nil, false
	}
	pcm := RenderCue(cue, s.context.SampleRate())
	s.cache[id] = pcm
	return pcm, true
}

// RenderCue synthesizes one cue to 16-bit stereo little-endian PCM,
// the format the ebiten audio context plays directly. The frequency
// sweeps linearly from Freq to EndFreq over the cue duration.
func RenderCue(cue cfg.CueConfig, sampleRate int) []byte {
	n := int(cue.Duration * float64(sampleRate))
	if n < 1 {
		n = 1
	}
	endFreq := cue.EndFreq
	if endFreq == 0 {
		endFreq = cue.Freq
	}

	out := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n)
		freq := cue.Freq + (endFreq-cue.Freq)*u
		phase += freq / float64(sampleRate)
		if phase >= 1 {
			phase -= 1
		}

		var v float64
		switch cue.Wave {
		case cfg.WaveSquare:
			if phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case cfg.WaveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case cfg.WaveNoise:
			v = rand.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		v *= envelope(i, n, sampleRate) * cue.Volume
		sample := int16(v * 32000)
		lo, hi := byte(sample), byte(sample>>8)
		out[i*4+0] = lo
		out[i*4+1] = hi
		out[i*4+2] = lo
		out[i*4+3] = hi
	}
	return out
}

// envelope is a short linear attack and a linear release over the
// final quarter, killing the clicks at both ends of the cue.
func envelope(i, total, sampleRate int) float64 {
	attack := sampleRate / 250 // 4ms
	if attack < 1 {
		attack = 1
	}
	v := 1.0
	if i < attack {
		v = float64(i) / float64(attack)
	}
	releaseStart := total - total/4
	if i >= releaseStart && total > releaseStart {
		r := float64(total-i) / float64(total-releaseStart)
		if r < v {
			v = r
		}
	}
	return v
}
