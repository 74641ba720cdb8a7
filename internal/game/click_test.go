package game

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/dotgrid/internal/config"
	"github.com/iburimskiy/dotgrid/internal/grid"
	"github.com/iburimskiy/dotgrid/internal/ui"
)

func TestClickToneLength(t *testing.T) {
	sr := beep.SampleRate(1000)
	tone := newClickTone(sr, 100, 50*time.Millisecond, 0.5)

	buf := make([][2]float64, 32)
	var total int
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.5 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %v out of range or not mono", buf[i])
			}
		}
	}
	if total != 50 {
		t.Errorf("streamed %d samples, want 50", total)
	}
	if tone.Err() != nil {
		t.Errorf("Err() = %v", tone.Err())
	}
}

func TestClickToneFadesOut(t *testing.T) {
	sr := beep.SampleRate(8000)
	tone := newClickTone(sr, 440, 100*time.Millisecond, 1)
	buf := make([][2]float64, sr.N(100*time.Millisecond))
	n, ok := tone.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	peak := func(s [][2]float64) float64 {
		var m float64
		for _, v := range s {
			m = math.Max(m, math.Abs(v[0]))
		}
		return m
	}
	quarter := len(buf) / 4
	if head, tail := peak(buf[:quarter]), peak(buf[len(buf)-quarter:]); tail >= head {
		t.Errorf("tail peak %v not below head peak %v", tail, head)
	}
}

func TestClickFreq(t *testing.T) {
	if clickFreq(ui.ModeAction(grid.Push)) != config.ModeClickHz {
		t.Errorf("mode click uses wrong pitch")
	}
	if clickFreq(ui.ColorAction(ui.Cyan)) != config.ColorClickHz {
		t.Errorf("color click uses wrong pitch")
	}
}

func TestNilClickPlayerIsSilent(t *testing.T) {
	var p *clickPlayer
	p.play(ui.ModeAction(grid.Pull))
}
