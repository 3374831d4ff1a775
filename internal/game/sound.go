package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/time/rate"
)

const sampleRate = 44100

// SoundBank plays the feedback cues through ebiten's audio context. Cues are
// rendered once; a limiter keeps rapid failures from stacking up.
type SoundBank struct {
	ctx     *audio.Context
	fail    []byte
	success []byte
	win     []byte
	limiter *rate.Limiter
	playing []*audio.Player
}

// NewSoundBank renders the cues and attaches to the process audio context.
func NewSoundBank() *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &SoundBank{
		ctx:     ctx,
		fail:    renderTone(sampleRate, []toneNote{{freq: 110, dur: 180 * time.Millisecond, square: true}}, 0.25),
		success: renderTone(sampleRate, []toneNote{{freq: 660, dur: 90 * time.Millisecond}, {freq: 880, dur: 140 * time.Millisecond}}, 0.3),
		win: renderTone(sampleRate, []toneNote{
			{freq: 523.25, dur: 120 * time.Millisecond},
			{freq: 659.25, dur: 120 * time.Millisecond},
			{freq: 783.99, dur: 120 * time.Millisecond},
			{freq: 1046.5, dur: 320 * time.Millisecond},
		}, 0.3),
		limiter: rate.NewLimiter(rate.Every(150*time.Millisecond), 2),
	}
}

func (sb *SoundBank) Fail()    { sb.play(sb.fail) }
func (sb *SoundBank) Success() { sb.play(sb.success) }
func (sb *SoundBank) Win()     { sb.play(sb.win) }

func (sb *SoundBank) play(pcm []byte) {
	if !sb.limiter.Allow() {
		return
	}
	kept := sb.playing[:0]
	for _, p := range sb.playing {
		if p.IsPlaying() {
			kept = append(kept, p)
		} else {
			_ = p.Close()
		}
	}
	sb.playing = kept

	p := sb.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	sb.playing = append(sb.playing, p)
}

type toneNote struct {
	freq   float64
	dur    time.Duration
	square bool
}

// renderTone renders notes back to back as 16-bit little-endian stereo PCM,
// with a short linear attack and release per note.
func renderTone(sr int, notes []toneNote, volume float64) []byte {
	total := 0
	for _, n := range notes {
		total += int(n.dur.Seconds() * float64(sr))
	}
	buf := make([]byte, 0, total*4)
	ramp := sr / 200 // 5ms
	for _, n := range notes {
		count := int(n.dur.Seconds() * float64(sr))
		for i := 0; i < count; i++ {
			phase := 2 * math.Pi * n.freq * float64(i) / float64(sr)
			v := math.Sin(phase)
			if n.square {
				v = math.Copysign(0.6, v)
			}
			env := 1.0
			if i < ramp {
				env = float64(i) / float64(ramp)
			} else if count-i < ramp {
				env = float64(count-i) / float64(ramp)
			}
			s := int16(v * env * volume * math.MaxInt16)
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
			buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
		}
	}
	return buf
}
