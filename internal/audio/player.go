// Package audio plays the Solar City sound cues with beep.
//
// Player implements solarcity.Emitter. Every cue is optional: a missing or
// undecodable file, or a machine without an audio device, is logged once as a
// warning and the matching events are dropped from then on.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/solar-city/internal/config"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

const (
	sampleRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// Cue identifies a sound asset.
type Cue int

const (
	CueMusic Cue = iota
	CueThunder
	CueVictory
	CueDefeat
	cueCount
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueMusic:
		return "music"
	case CueThunder:
		return "thunder"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Player owns the decoded cues and the mixer fed to the speaker.
type Player struct {
	mu      sync.Mutex
	logger  *log.Logger
	volumes config.AudioVolume

	cues  [cueCount]*beep.Buffer
	mixer *beep.Mixer
	music *effects.Volume // nil until the music loop is playing

	musicLevel solarcity.Volume
	started    bool // Speaker initialized and fed by mixer
}

// NewPlayer creates a silent player. Call Load to decode the cue files and
// Start to open the audio device.
func NewPlayer(volumes config.AudioVolume, logger *log.Logger) *Player {
	return &Player{
		logger:  logger,
		volumes: volumes,
		mixer:   &beep.Mixer{},
	}
}

// Load decodes every cue file named in cfg. Failures are logged and leave the
// cue unavailable; Load returns the number of cues that loaded.
func (p *Player) Load(cfg config.AudioConfig) int {
	files := [cueCount]string{
		CueMusic:   cfg.AssetPath(cfg.Music),
		CueThunder: cfg.AssetPath(cfg.Thunder),
		CueVictory: cfg.AssetPath(cfg.Victory),
		CueDefeat:  cfg.AssetPath(cfg.Defeat),
	}

	loaded := 0
	for cue, path := range files {
		if path == "" {
			continue
		}
		buf, err := decodeFile(path)
		if err != nil {
			p.logger.Warn("sound cue unavailable", "cue", Cue(cue), "err", err)
			continue
		}
		p.SetCue(Cue(cue), buf)
		loaded++
	}
	return loaded
}

// SetCue installs an already decoded cue.
func (p *Player) SetCue(cue Cue, buf *beep.Buffer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cues[cue] = buf
}

// Start opens the audio device and begins the music loop.
// A device error is returned so the caller can log it; the player then
// keeps mixing silently.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open device: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true

	p.startMusicLocked()
	return nil
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
	p.music = nil
}

// Emit handles a simulation event. It never blocks on playback.
func (p *Player) Emit(e solarcity.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case solarcity.EventPlayThunder:
		p.playLocked(CueThunder, p.volumes.Thunder)
	case solarcity.EventPlayVictory:
		p.playLocked(CueVictory, p.volumes.Victory)
	case solarcity.EventPlayDefeat:
		p.playLocked(CueDefeat, p.volumes.Defeat)
	case solarcity.EventSetMusicVolume:
		p.musicLevel = e.Volume
		if p.music != nil {
			gain := p.musicGain()
			p.withSpeaker(func() { setGain(p.music, gain) })
		}
	}
}

// MusicLevel returns the last requested music level.
func (p *Player) MusicLevel() solarcity.Volume {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicLevel
}

// Active returns the number of streams in the mixer, music included.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	p.withSpeaker(func() { n = p.mixer.Len() })
	return n
}

func (p *Player) playLocked(cue Cue, gain float64) {
	buf := p.cues[cue]
	if buf == nil {
		p.logger.Debug("sound cue dropped", "cue", cue)
		return
	}
	s := newVolume(buf.Streamer(0, buf.Len()), gain)
	p.withSpeaker(func() { p.mixer.Add(s) })
}

func (p *Player) startMusicLocked() {
	buf := p.cues[CueMusic]
	if buf == nil || p.music != nil {
		return
	}
	loop := beep.Loop(-1, buf.Streamer(0, buf.Len()))
	p.music = newVolume(loop, p.musicGain())
	music := p.music
	p.withSpeaker(func() { p.mixer.Add(music) })
}

func (p *Player) musicGain() float64 {
	if p.musicLevel == solarcity.VolumeLow {
		return p.volumes.MusicLow
	}
	return p.volumes.MusicNormal
}

// withSpeaker runs f under the speaker lock once the speaker goroutine
// reads the mixer.
func (p *Player) withSpeaker(f func()) {
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

func decodeFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	return bufferAt(streamer, format), nil
}

// bufferAt reads s fully into a buffer at the player sample rate.
func bufferAt(s beep.Streamer, format beep.Format) *beep.Buffer {
	if format.SampleRate != sampleRate {
		s = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
		format.SampleRate = sampleRate
	}
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero
// gain is mapped to a silent stream.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}
