package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/zracer/constants"
)

const testRate = beep.SampleRate(44100)

func drain(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestWaveSample(t *testing.T) {
	if v := waveSine.sample(0.25); math.Abs(v-1) > 1e-9 {
		t.Errorf("Expected sine peak at quarter phase, got %f", v)
	}
	if v := waveSquare.sample(0.1); v != 1 {
		t.Errorf("Expected square high in first half, got %f", v)
	}
	if v := waveSquare.sample(0.6); v != -1 {
		t.Errorf("Expected square low in second half, got %f", v)
	}
	if v := waveSaw.sample(0); v != -1 {
		t.Errorf("Expected saw to start at -1, got %f", v)
	}

	varied := false
	first := waveNoise.sample(0)
	for i := 0; i < 50; i++ {
		v := waveNoise.sample(0)
		if v < -1 || v > 1 {
			t.Fatalf("Noise sample out of range: %f", v)
		}
		if v != first {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected noise samples to vary")
	}
}

func TestVoiceLength(t *testing.T) {
	length := 10 * time.Millisecond
	v := &voice{wave: waveSine, step: 440 / float64(testRate), total: testRate.N(length)}

	if got := drain(v); got != testRate.N(length) {
		t.Errorf("Expected %d samples, got %d", testRate.N(length), got)
	}

	n, ok := v.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected drained voice to return 0,false, got %d,%v", n, ok)
	}
}

func TestVoiceEnvelope(t *testing.T) {
	// 100 samples: 20 attack, 60 sustain, 20 release
	v := &voice{wave: waveSquare, total: 100, attack: 20, release: 20}
	samples := make([][2]float64, 100)
	if n, _ := v.Stream(samples); n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[10][0] != 0.5 {
		t.Errorf("Expected half level mid-attack, got %f", samples[10][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %f", samples[50][0])
	}
	if samples[90][0] != 0.5 {
		t.Errorf("Expected half level mid-release, got %f", samples[90][0])
	}
	if samples[99][0] <= 0 || samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade toward zero, got %f", samples[99][0])
	}
}

func TestCreateRaceSounds(t *testing.T) {
	cfg := DefaultAudioConfig()

	testCases := []struct {
		name   string
		create func(*AudioConfig) beep.Streamer
	}{
		{"Start", CreateStartSound},
		{"Crash", CreateCrashSound},
		{"Finish", CreateFinishSound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sound := tc.create(cfg)
			samples := make([][2]float64, 1000)
			n, ok := sound.Stream(samples)
			if !ok || n == 0 {
				t.Fatalf("Expected %s sound to produce samples, got n=%d ok=%v", tc.name, n, ok)
			}
			for i := 0; i < n; i++ {
				if math.Abs(samples[i][0]) > 1.0 {
					t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
				}
			}
		})
	}
}

func TestFinishSoundPlaysBothNotes(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)
	want := rate.N(constants.FinishSoundNote1Duration) + rate.N(constants.FinishSoundNote2Duration)

	if got := drain(CreateFinishSound(cfg)); got != want {
		t.Errorf("Expected %d samples for both notes, got %d", want, got)
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for _, st := range []SoundType{SoundStart, SoundCrash, SoundFinish} {
		if GetSoundEffect(st, cfg) == nil {
			t.Errorf("Expected a streamer for %s", st)
		}
	}
	if GetSoundEffect(SoundType(999), cfg) != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	samples := make([][2]float64, 100)
	n, ok := CreateCrashSound(cfg).Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("Expected muted sound to keep streaming, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", samples[i][0], i)
		}
	}
}
