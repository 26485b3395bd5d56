package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Tone is a generated sound cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
}

var Tones = map[string]Tone{
	"shoot":       {Freq: 880, Duration: 40 * time.Millisecond, Volume: 0.15},
	"hit":         {Freq: 440, Duration: 60 * time.Millisecond, Volume: 0.2},
	"explode":     {Freq: 110, Duration: 200 * time.Millisecond, Volume: 0.3},
	"player_dead": {Freq: 70, Duration: 600 * time.Millisecond, Volume: 0.4},
}

// PCM renders a tone as 16-bit little-endian stereo samples with a linear
// fade out, the layout ebiten's audio players expect.
func PCM(name string, sampleRate int) ([]byte, error) {
	tone, ok := Tones[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown tone %q", name)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("assets: bad sample rate %d", sampleRate)
	}
	n := int(float64(sampleRate) * tone.Duration.Seconds())
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*tone.Freq*float64(i)/float64(sampleRate)) * tone.Volume * fade
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out, nil
}
