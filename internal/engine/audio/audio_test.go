package audio

import (
	"math"
	"testing"
)

func TestVolumeToDB(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 0},
		{0.5, -6.0206},
		{0.1, -20},
		{0.01, -40},
		{0, silentDB},
		{-1, silentDB},
	}
	for _, tt := range tests {
		if got := volumeToDB(tt.vol); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("volumeToDB(%v): expected %v, got %v", tt.vol, tt.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("clamp(%v, %v, %v): expected %v, got %v", tt.v, tt.lo, tt.hi, tt.want, got)
		}
	}
}

func TestManagerVolumes(t *testing.T) {
	m := New()
	master, ambience, sfx := m.Volumes()
	if master != 1 || ambience != 0.7 || sfx != 1 {
		t.Errorf("expected defaults (1, 0.7, 1), got (%v, %v, %v)", master, ambience, sfx)
	}

	m.SetMasterVolume(2)
	m.SetAmbienceVolume(-1)
	m.SetSFXVolume(0.25)
	master, ambience, sfx = m.Volumes()
	if master != 1 || ambience != 0 || sfx != 0.25 {
		t.Errorf("expected clamped (1, 0, 0.25), got (%v, %v, %v)", master, ambience, sfx)
	}
}

func TestUninitializedManagerIsInert(t *testing.T) {
	m := New()
	if m.IsInitialized() {
		t.Error("expected a new manager to be closed")
	}
	if err := m.PlayAmbience("ocean.wav"); err == nil {
		t.Error("expected PlayAmbience to fail before Init")
	}
	if err := m.LoadEffect("pickup", "pickup.wav"); err == nil {
		t.Error("expected LoadEffect to fail before Init")
	}
	// Must not panic.
	m.PlayEffect("pickup")
	m.StopAmbience()
	m.Close()
	if m.AmbiencePath() != "" {
		t.Errorf("expected no ambience, got %q", m.AmbiencePath())
	}
}
