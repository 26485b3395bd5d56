package prefabs

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds the run tunables.
type GameSpec struct {
	Name          string   `yaml:"name"`
	ScrollSpeed   int      `yaml:"scroll_speed"`
	EnemyInterval int      `yaml:"enemy_interval"`
	RockInterval  int      `yaml:"rock_interval"`
	BlockInterval int      `yaml:"block_interval"`
	SpawnMargin   int      `yaml:"spawn_margin"`
	KillScore     int      `yaml:"kill_score"`
	Player        string   `yaml:"player"`
	Enemies       []string `yaml:"enemies"`
	Rock          string   `yaml:"rock"`
	Block         string   `yaml:"block"`
	Wall          string   `yaml:"wall"`
	Tileset       string   `yaml:"tileset"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	if spec.ScrollSpeed <= 0 {
		return nil, fmt.Errorf("prefabs: game.yaml: scroll_speed must be positive")
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name         string          `yaml:"name"`
	MoveSpeed    float64         `yaml:"move_speed"`
	Health       int             `yaml:"health"`
	FireCooldown int             `yaml:"fire_cooldown"`
	Projectile   string          `yaml:"projectile"`
	Transform    TransformSpec   `yaml:"transform"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

type EnemySpec struct {
	Name         string          `yaml:"name"`
	MoveSpeed    float64         `yaml:"move_speed"`
	Health       int             `yaml:"health"`
	FireCooldown int             `yaml:"fire_cooldown"`
	Projectile   string          `yaml:"projectile"`
	Script       string          `yaml:"script"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

// TerrainSpec covers rocks and blocks.
type TerrainSpec struct {
	Name         string          `yaml:"name"`
	Destructible bool            `yaml:"destructible"`
	Health       int             `yaml:"health"`
	Collider     ColliderSpec    `yaml:"collider"`
	Sprite       SpriteSpec      `yaml:"sprite"`
	Animation    AnimationSpec   `yaml:"animation"`
	RenderLayer  RenderLayerSpec `yaml:"render_layer"`
}

type WallSpec struct {
	Name  string     `yaml:"name"`
	Debug *YAMLColor `yaml:"debug_color"`
}

type ProjectileSpec struct {
	Name        string          `yaml:"name"`
	VY          float64         `yaml:"vy"`
	Damage      int             `yaml:"damage"`
	OffsetY     int             `yaml:"offset_y"`
	TTL         int             `yaml:"ttl"`
	Collider    ColliderSpec    `yaml:"collider"`
	Sprite      SpriteSpec      `yaml:"sprite"`
	RenderLayer RenderLayerSpec `yaml:"render_layer"`
}

type TilesetSpec struct {
	Sheet         string           `yaml:"sheet"`
	SheetWidth    int              `yaml:"sheet_width"`
	Tiles         []TileSpec       `yaml:"tiles"`
	Groups        map[string][]int `yaml:"groups"`
	Columns       int              `yaml:"columns"`
	Rows          int              `yaml:"rows"`
	BorderColumns int              `yaml:"border_columns"`
	OutcropChance float64          `yaml:"outcrop_chance"`
}

type TileSpec struct {
	Solid bool `yaml:"solid"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type TransformSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type ColliderSpec struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OffsetX int `yaml:"offsetX"`
	OffsetY int `yaml:"offsetY"`
}

type SpriteSpec struct {
	Sheet  string     `yaml:"sheet"`
	Source *RectSpec  `yaml:"source"`
	Color  *YAMLColor `yaml:"color"`
}

type RectSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

func (r RectSpec) Rectangle() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type AnimationSpec struct {
	Initial     string              `yaml:"initial"`
	Clips       map[string]ClipSpec `yaml:"clips"`
	Transitions []TransitionSpec    `yaml:"transitions"`
}

type ClipSpec struct {
	Frames     []RectSpec `yaml:"frames"`
	FrameTimes []int      `yaml:"frame_times"`
	Loop       bool       `yaml:"loop"`
}

type TransitionSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Input string `yaml:"input"`
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color, or fallback when unset.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
