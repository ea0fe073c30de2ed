package audio

import (
	"testing"
)

func clearAudioEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ZRACER_AUDIO_ENABLED", "ZRACER_MASTER_VOLUME", "ZRACER_SFX_VOLUMES", "ZRACER_SAMPLE_RATE"} {
		t.Setenv(key, "")
	}
}

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		if v, ok := cfg.EffectVolumes[st]; !ok || v <= 0 {
			t.Errorf("Expected positive volume for %s, got %f", st, v)
		}
	}
}

// TestLoadAudioConfigDefaults verifies empty variables leave defaults untouched
func TestLoadAudioConfigDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadAudioConfigEnabled(t *testing.T) {
	testCases := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"1", true},
		{"0", false},
		{"maybe", true},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv("ZRACER_AUDIO_ENABLED", tc.value)
			if cfg := LoadAudioConfig(); cfg.Enabled != tc.expected {
				t.Errorf("Expected Enabled=%v for %q, got %v", tc.expected, tc.value, cfg.Enabled)
			}
		})
	}
}

// TestLoadAudioConfigMasterVolume covers percent conversion and clamping
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"75", 0.75},
		{"100", 1.0},
		{"-50", 0.0},
		{"150", 1.0},
		{"loud", 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv("ZRACER_MASTER_VOLUME", tc.value)
			if cfg := LoadAudioConfig(); cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for %q, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

func TestLoadAudioConfigSampleRate(t *testing.T) {
	testCases := []struct {
		value    string
		expected int
	}{
		{"22050", 22050},
		{"48000", 48000},
		{"invalid", 44100},
		{"-1000", 44100},
		{"0", 44100},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			clearAudioEnv(t)
			t.Setenv("ZRACER_SAMPLE_RATE", tc.value)
			if cfg := LoadAudioConfig(); cfg.SampleRate != tc.expected {
				t.Errorf("Expected SampleRate=%d for %q, got %d", tc.expected, tc.value, cfg.SampleRate)
			}
		})
	}
}

// TestLoadAudioConfigEffectVolumes verifies per-sound volumes by name; unknown names are ignored
func TestLoadAudioConfigEffectVolumes(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv("ZRACER_SFX_VOLUMES", `{"start": 0.9, "crash": 1.5, "horn": 0.2}`)

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if v := cfg.EffectVolumes[SoundStart]; v != 0.9 {
		t.Errorf("Expected start volume 0.9, got %f", v)
	}
	if v := cfg.EffectVolumes[SoundCrash]; v != 1.0 {
		t.Errorf("Expected crash volume clamped to 1.0, got %f", v)
	}
	if v := cfg.EffectVolumes[SoundFinish]; v != def.EffectVolumes[SoundFinish] {
		t.Errorf("Expected default finish volume, got %f", v)
	}
	if len(cfg.EffectVolumes) != int(soundTypeCount) {
		t.Errorf("Expected %d volumes, got %d", soundTypeCount, len(cfg.EffectVolumes))
	}
}

func TestLoadAudioConfigEffectVolumesInvalid(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv("ZRACER_SFX_VOLUMES", "invalid json")

	cfg := LoadAudioConfig()
	for st, want := range DefaultAudioConfig().EffectVolumes {
		if got := cfg.EffectVolumes[st]; got != want {
			t.Errorf("Expected default volume %f for %s, got %f", want, st, got)
		}
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundCrash.String() != "crash" {
		t.Errorf("Expected crash, got %s", SoundCrash)
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(99))
	}
}
