package constants

import "time"

// Audio Engine Defaults
const (
	DefaultSampleRate   = 44100
	DefaultMasterVolume = 0.5

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundDuration = 400 * time.Millisecond
	StartSoundAttack   = 5 * time.Millisecond
	StartSoundRelease  = 300 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 450 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 400 * time.Millisecond
)

// Finish Sound Timing
const (
	FinishSoundNote1Duration = 120 * time.Millisecond
	FinishSoundNote2Duration = 400 * time.Millisecond
	FinishSoundAttack        = 5 * time.Millisecond
	FinishSoundNote1Release  = 60 * time.Millisecond
	FinishSoundNote2Release  = 300 * time.Millisecond
)
