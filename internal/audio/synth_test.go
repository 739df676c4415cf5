package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// drain streams s to completion and returns the sample count and peak amplitude.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestEffectsAreFinite(t *testing.T) {
	durations := map[Sound]time.Duration{
		SoundLaser:     laserDuration,
		SoundExplosion: explosionDuration,
		SoundDamage:    damageDuration,
	}
	for snd, d := range durations {
		st := NewEffect(snd, sampleRate, 0.5)
		require.NotNil(t, st, snd.String())

		n, peak := drain(t, st, sampleRate.N(5*time.Second))
		require.Equal(t, sampleRate.N(d), n, snd.String())
		require.Greater(t, peak, 0.0, snd.String())
		require.LessOrEqual(t, peak, 0.5+1e-9, snd.String())
	}
}

func TestEffectUnknownSound(t *testing.T) {
	require.Nil(t, NewEffect(soundCount, sampleRate, 1))
	require.Equal(t, "unknown", soundCount.String())
}

func TestZeroGainIsSilent(t *testing.T) {
	_, peak := drain(t, NewEffect(SoundLaser, sampleRate, 0), sampleRate.N(time.Second))
	require.Equal(t, 0.0, peak)
}

func TestMusicNeverEnds(t *testing.T) {
	limit := sampleRate.N(3 * time.Second)
	n, peak := drain(t, NewMusic(sampleRate, 0.4), limit)
	require.GreaterOrEqual(t, n, limit)
	require.Greater(t, peak, 0.0)
}

func TestNopAndSpeakerWithoutDevice(t *testing.T) {
	Nop{}.Play(SoundDamage)

	// Play before Init must not touch the device.
	s := NewSpeaker(Options{Volume: 0.5, MusicVolume: 0.4})
	s.Play(SoundLaser)
	s.StartMusic()
	s.Close()
}
