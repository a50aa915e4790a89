package assets

import (
	"testing"

	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
)

func pcmSample(pcm []byte, frame int) int16 {
	return int16(uint16(pcm[frame*4]) | uint16(pcm[frame*4+1])<<8)
}

// TestRenderCueLength verifies the PCM length matches the cue
// duration in 16-bit stereo frames.
func TestRenderCueLength(t *testing.T) {
	cases := []struct {
		name     string
		duration float64
		want     int
	}{
		{
			name:     "tenth of a second",
			duration: 0.1,
			want:     4410 * 4,
		},
		{
			name:     "one second",
			duration: 1.0,
			want:     44100 * 4,
		},
		{
			name:     "zero duration still emits a frame",
			duration: 0,
			want:     4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cue := cfg.CueConfig{Wave: cfg.WaveSine, Freq: 440, Duration: tc.duration, Volume: 1}
			pcm := RenderCue(cue, 44100)
			if len(pcm) != tc.want {
				t.Errorf("len = %d, want %d", len(pcm), tc.want)
			}
		})
	}
}

// TestRenderCueEnvelope verifies the cue starts silent, reaches
// audible level in the middle and fades back out at the end.
func TestRenderCueEnvelope(t *testing.T) {
	cue := cfg.CueConfig{Wave: cfg.WaveSquare, Freq: 200, Duration: 0.2, Volume: 0.8}
	pcm := RenderCue(cue, 44100)
	frames := len(pcm) / 4

	if got := pcmSample(pcm, 0); got != 0 {
		t.Errorf("first sample = %d, want 0", got)
	}

	peak := int16(0)
	for i := frames / 4; i < frames/2; i++ {
		s := pcmSample(pcm, i)
		if s > peak {
			peak = s
		}
	}
	if peak < 20000 {
		t.Errorf("mid-cue peak = %d, want a square wave near full volume", peak)
	}

	last := pcmSample(pcm, frames-1)
	if last > 500 || last < -500 {
		t.Errorf("final sample = %d, want a faded-out tail", last)
	}
}

// TestRenderCueChannels verifies both stereo channels carry the same
// signal.
func TestRenderCueChannels(t *testing.T) {
	cue := cfg.CueConfig{Wave: cfg.WaveTriangle, Freq: 330, EndFreq: 660, Duration: 0.05, Volume: 0.5}
	pcm := RenderCue(cue, 44100)

	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channel mismatch at frame %d", i/4)
		}
	}
}

// TestEveryCueRenders verifies every configured sound has a playable
// buffer.
func TestEveryCueRenders(t *testing.T) {
	for id, cue := range cfg.Cues {
		pcm := RenderCue(cue, cfg.Audio.SampleRate)
		if len(pcm) == 0 {
			t.Errorf("cue %d rendered empty", id)
			continue
		}
		loud := false
		for frame := 0; frame < len(pcm)/4; frame++ {
			s := pcmSample(pcm, frame)
			if s > 1000 || s < -1000 {
				loud = true
				break
			}
		}
		if !loud {
			t.Errorf("cue %d rendered silence", id)
		}
	}
}
