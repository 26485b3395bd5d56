package render

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/scrollshooter/assets"
	"github.com/milk9111/scrollshooter/ecs"
)

const sampleRate = 44100

// AudioSystem drains sound events and plays the matching generated tone.
// PCM buffers are rendered once per cue.
type AudioSystem struct {
	context *audio.Context
	cues    map[string][]byte
	Muted   bool
}

func NewAudioSystem() *AudioSystem {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &AudioSystem{context: ctx, cues: map[string][]byte{}}
}

func (a *AudioSystem) Update(w *ecs.World) {
	for _, ev := range w.Events().Drain() {
		switch ev.Type {
		case ecs.EventSound:
			snd, ok := ev.Data.(ecs.SoundEvent)
			if !ok || a.Muted {
				continue
			}
			a.play(snd.Name)
		case ecs.EventGameOver:
			log.Printf("game: over %+v", ev.Data)
		}
	}
}

func (a *AudioSystem) play(name string) {
	pcm, ok := a.cues[name]
	if !ok {
		var err error
		pcm, err = assets.PCM(name, a.context.SampleRate())
		if err != nil {
			log.Printf("audio: %v", err)
			a.cues[name] = nil
			return
		}
		a.cues[name] = pcm
	}
	if pcm == nil {
		return
	}
	a.context.NewPlayerFromBytes(pcm).Play()
}
