package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/solar-city/internal/config"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

func silentBuffer(samples int) *beep.Buffer {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	return bufferAt(beep.Silence(samples), format)
}

func newTestPlayer(buf *bytes.Buffer) *Player {
	logger := log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	return NewPlayer(config.Default().Audio.Volumes, logger)
}

// TestPlayerWithoutDevice verifies events are safe before Start and with no cues.
func TestPlayerWithoutDevice(t *testing.T) {
	var out bytes.Buffer
	p := newTestPlayer(&out)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Emit panicked without cues: %v", r)
		}
	}()

	for _, e := range []solarcity.Event{
		{Kind: solarcity.EventPlayThunder},
		{Kind: solarcity.EventPlayVictory},
		{Kind: solarcity.EventPlayDefeat},
		{Kind: solarcity.EventSetMusicVolume, Volume: solarcity.VolumeLow},
	} {
		p.Emit(e)
	}

	if p.Active() != 0 {
		t.Errorf("Active() = %d with no cues loaded", p.Active())
	}
	if !strings.Contains(out.String(), "sound cue dropped") {
		t.Error("dropped cue was not logged")
	}
	p.Close()
}

func TestPlayerEmitQueuesCue(t *testing.T) {
	var out bytes.Buffer
	p := newTestPlayer(&out)
	p.SetCue(CueThunder, silentBuffer(1000))
	p.SetCue(CueDefeat, silentBuffer(1000))

	p.Emit(solarcity.Event{Kind: solarcity.EventPlayThunder})
	p.Emit(solarcity.Event{Kind: solarcity.EventPlayDefeat})
	p.Emit(solarcity.Event{Kind: solarcity.EventPlayVictory}) // Not loaded

	if p.Active() != 2 {
		t.Errorf("Active() = %d, expected 2", p.Active())
	}
}

func TestPlayerMusicLevel(t *testing.T) {
	var out bytes.Buffer
	p := newTestPlayer(&out)

	if p.MusicLevel() != solarcity.VolumeNormal {
		t.Errorf("initial level %v", p.MusicLevel())
	}
	p.Emit(solarcity.Event{Kind: solarcity.EventSetMusicVolume, Volume: solarcity.VolumeLow})
	if p.MusicLevel() != solarcity.VolumeLow {
		t.Errorf("level %v after low", p.MusicLevel())
	}
	if p.musicGain() != 0.02 {
		t.Errorf("musicGain() = %v, expected 0.02", p.musicGain())
	}

	// The loop picks up the current level and follows later changes.
	p.SetCue(CueMusic, silentBuffer(1000))
	p.startMusicLocked()
	if p.music == nil || p.Active() != 1 {
		t.Fatal("music loop not started")
	}
	if want := math.Log2(0.02); math.Abs(p.music.Volume-want) > 1e-9 {
		t.Errorf("music volume %v, expected %v", p.music.Volume, want)
	}

	p.Emit(solarcity.Event{Kind: solarcity.EventSetMusicVolume, Volume: solarcity.VolumeNormal})
	if want := math.Log2(0.1); math.Abs(p.music.Volume-want) > 1e-9 {
		t.Errorf("music volume %v, expected %v", p.music.Volume, want)
	}
}

func TestPlayerLoadMissingAssets(t *testing.T) {
	var out bytes.Buffer
	p := newTestPlayer(&out)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "trovao.mp3"), []byte("not an mp3"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Audio
	cfg.AssetsDir = dir

	if n := p.Load(cfg); n != 0 {
		t.Errorf("Load() = %d, expected 0", n)
	}
	if got := strings.Count(out.String(), "sound cue unavailable"); got != 4 {
		t.Errorf("%d warnings, expected one per cue:\n%s", got, out.String())
	}
}

func TestSetGain(t *testing.T) {
	tests := []struct {
		gain   float64
		volume float64
		silent bool
	}{
		{1, 0, false},
		{0.5, -1, false},
		{0, 0, true},
		{-1, 0, true},
	}

	for _, tc := range tests {
		v := &effects.Volume{Base: 2}
		setGain(v, tc.gain)
		if v.Volume != tc.volume || v.Silent != tc.silent {
			t.Errorf("setGain(%v) = volume %v silent %v", tc.gain, v.Volume, v.Silent)
		}
	}
}

func TestCueString(t *testing.T) {
	names := map[Cue]string{CueMusic: "music", CueThunder: "thunder", CueVictory: "victory", CueDefeat: "defeat"}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("%d.String() = %q, expected %q", c, c.String(), want)
		}
	}
}
