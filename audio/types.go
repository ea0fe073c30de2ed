package audio

import (
	"errors"

	"github.com/lixenwraith/zracer/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundStart  SoundType = iota // Race start
	SoundCrash                   // Car hits terrain or another car
	SoundFinish                  // Car crosses the finish line
	soundTypeCount
)

var soundTypeNames = [soundTypeCount]string{"start", "crash", "finish"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundTypeNames[s]
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundStart:  0.6,
			SoundCrash:  0.8,
			SoundFinish: 0.7,
		},
	}
}

// Sentinel errors
var (
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
