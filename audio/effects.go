package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/zracer/constants"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// sample evaluates the wave at phase in [0, 1)
func (w wave) sample(phase float64) float64 {
	switch w {
	case waveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case waveSaw:
		return 2 * (phase - 0.5)
	case waveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// tone is one partial of an effect: a wave with a linear attack and release
type tone struct {
	wave    wave
	freq    float64
	gain    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// streamer renders the tone at rate, scaled by its gain
func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	v := &voice{
		wave:    t.wave,
		step:    t.freq / float64(rate),
		total:   rate.N(t.length),
		attack:  rate.N(t.attack),
		release: rate.N(t.release),
	}
	return newVolume(v, t.gain)
}

type voice struct {
	wave    wave
	phase   float64
	step    float64
	pos     int
	total   int
	attack  int
	release int
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= v.total {
		return 0, false
	}
	for n < len(samples) && v.pos < v.total {
		val := v.wave.sample(v.phase) * v.level()
		samples[n][0] = val
		samples[n][1] = val

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.pos++
		n++
	}
	return n, true
}

func (v *voice) Err() error { return nil }

// level is the envelope gain at the current position
func (v *voice) level() float64 {
	if v.attack > 0 && v.pos < v.attack {
		return float64(v.pos) / float64(v.attack)
	}
	if v.release > 0 && v.pos >= v.total-v.release {
		return float64(v.total-v.pos) / float64(v.release)
	}
	return 1
}

// math.Log2(0) is -Inf, so zero volume is expressed as silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func render(rate beep.SampleRate, tones []tone) []beep.Streamer {
	out := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		out[i] = t.streamer(rate)
	}
	return out
}

// chord plays tones together
func chord(cfg *AudioConfig, st SoundType, tones ...tone) beep.Streamer {
	mixed := beep.Mix(render(beep.SampleRate(cfg.SampleRate), tones)...)
	return newVolume(mixed, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// sequence plays tones one after another
func sequence(cfg *AudioConfig, st SoundType, tones ...tone) beep.Streamer {
	seq := beep.Seq(render(beep.SampleRate(cfg.SampleRate), tones)...)
	return newVolume(seq, cfg.EffectVolumes[st]*cfg.MasterVolume)
}

// CreateStartSound is an engine rev: A2 saw with a fifth above
func CreateStartSound(cfg *AudioConfig) beep.Streamer {
	d, a, r := constants.StartSoundDuration, constants.StartSoundAttack, constants.StartSoundRelease
	return chord(cfg, SoundStart,
		tone{wave: waveSaw, freq: 110, gain: 0.6, length: d, attack: a, release: r},
		tone{wave: waveSquare, freq: 165, gain: 0.25, length: d, attack: a, release: r},
	)
}

// CreateCrashSound is a noise burst over a low thud
func CreateCrashSound(cfg *AudioConfig) beep.Streamer {
	d, a, r := constants.CrashSoundDuration, constants.CrashSoundAttack, constants.CrashSoundRelease
	return chord(cfg, SoundCrash,
		tone{wave: waveNoise, gain: 0.7, length: d, attack: a, release: r},
		tone{wave: waveSine, freq: 55, gain: 0.5, length: d, attack: a, release: r},
	)
}

// CreateFinishSound is a two-note chime, E5 then A5
func CreateFinishSound(cfg *AudioConfig) beep.Streamer {
	return sequence(cfg, SoundFinish,
		tone{wave: waveSquare, freq: 659.25, gain: 1, length: constants.FinishSoundNote1Duration,
			attack: constants.FinishSoundAttack, release: constants.FinishSoundNote1Release},
		tone{wave: waveSquare, freq: 880, gain: 1, length: constants.FinishSoundNote2Duration,
			attack: constants.FinishSoundAttack, release: constants.FinishSoundNote2Release},
	)
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundStart:
		return CreateStartSound(cfg)
	case SoundCrash:
		return CreateCrashSound(cfg)
	case SoundFinish:
		return CreateFinishSound(cfg)
	default:
		return nil
	}
}
