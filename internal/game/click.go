package game

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/ui"
)

// clickTone is a short sine blip with a linear fade-out. It ends the stream
// once all of its samples have been produced.
type clickTone struct {
	sampleRate beep.SampleRate
	freq       float64
	volume     float64
	pos        int
	total      int
}

func newClickTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *clickTone {
	return &clickTone{
		sampleRate: sr,
		freq:       freq,
		volume:     volume,
		total:      sr.N(d),
	}
}

func (t *clickTone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		env := clamp01(1 - float64(t.pos)/float64(t.total))
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sampleRate)
		v := math.Sin(phase) * env * t.volume
		samples[i] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *clickTone) Err() error { return nil }

// clickPlayer plays a blip through the speaker whenever a button changes
// the state.
type clickPlayer struct {
	format beep.Format
}

func newClickPlayer() (*clickPlayer, error) {
	format := beep.Format{
		SampleRate:  beep.SampleRate(config.ClickSampleRate),
		NumChannels: 2,
		Precision:   2,
	}
	bufferSize := format.SampleRate.N(time.Second / 20)
	if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
		return nil, err
	}
	return &clickPlayer{format: format}, nil
}

func clickFreq(a ui.Action) float64 {
	if a.Kind == ui.SetMode {
		return config.ModeClickHz
	}
	return config.ColorClickHz
}

func (p *clickPlayer) play(a ui.Action) {
	if p == nil {
		return
	}
	speaker.Play(newClickTone(p.format.SampleRate, clickFreq(a), config.ClickDuration, config.ClickVolume))
}
