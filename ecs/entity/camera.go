package entity

import (
	"fmt"

	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

func NewCamera(w *ecs.World, cat *Catalog) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("camera: nil catalog")
	}
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Speed:  cat.Game.ScrollSpeed,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}); err != nil {
		return fail(w, camera, "camera", err)
	}
	return camera, nil
}

func NewGameState(w *ecs.World) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameStateComponent.Kind(), &component.GameState{PlayerAlive: true}); err != nil {
		return fail(w, e, "game state", err)
	}
	return e, nil
}
