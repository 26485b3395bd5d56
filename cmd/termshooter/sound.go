package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/scrollshooter/assets"
	"github.com/milk9111/scrollshooter/ecs"
)

const sampleRate = beep.SampleRate(44100)

// soundSystem drains sound events into sine tone cues on the speaker.
type soundSystem struct {
	enabled bool
}

func newSoundSystem(enabled bool) *soundSystem {
	if !enabled {
		return &soundSystem{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("termshooter: audio disabled: %v", err)
		return &soundSystem{}
	}
	return &soundSystem{enabled: true}
}

func (s *soundSystem) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		switch ev.Type {
		case ecs.EventSound:
			snd, ok := ev.Data.(ecs.SoundEvent)
			if ok && s.enabled {
				s.play(snd.Name)
			}
		case ecs.EventGameOver:
			log.Printf("game: over %+v", ev.Data)
		}
	}
}

func (s *soundSystem) play(name string) {
	tone, ok := assets.Tones[name]
	if !ok {
		log.Printf("termshooter: unknown tone %q", name)
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		log.Printf("termshooter: tone %q: %v", name, err)
		return
	}
	speaker.Play(&effects.Gain{
		Streamer: beep.Take(sampleRate.N(tone.Duration), sine),
		Gain:     tone.Volume - 1,
	})
}
