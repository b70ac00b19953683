package main

import (
	"os"
	"time"

	"github.com/alecthomas/kong"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config       string `help:"YAML tuning file merged over the built-in defaults." optional:""`
	LogLevel     string `help:"Log level." default:"info" enum:"debug,info,warn,error"`
	Width        int    `help:"Window width." default:"960"`
	Height       int    `help:"Window height." default:"540"`
	TPS          int    `help:"Logical ticks per second." default:"60"`
	StartEngaged bool   `help:"Start with input captured instead of the pause overlay."`
	NoHUD        bool   `help:"Hide the numeric readout." name:"no-hud"`
}

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(tuning cfg.LocomotionConfig) *Game {
	return &Game{
		scene: scenes.NewWalkScene(tuning, cfg.Scene, cfg.Debug.StartEngaged),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

// loadTuning merges the tuning file at path over base. Any failure is logged
// and base is used instead.
func loadTuning(path string, base cfg.LocomotionConfig) cfg.LocomotionConfig {
	if path == "" {
		return base
	}
	loaded, err := cfg.LoadLocomotion(path, base)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("using default tuning")
		return base
	}
	log.Info().Str("path", path).Msg("loaded tuning")
	return loaded
}

func main() {
	kong.Parse(&CLI,
		kong.Name("firstperson"),
		kong.Description("first-person walk-around demo"),
		kong.UsageOnError(),
	)

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	level, err := zerolog.ParseLevel(CLI.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	cfg.C.Width = CLI.Width
	cfg.C.Height = CLI.Height
	cfg.C.TPS = CLI.TPS
	cfg.Debug.StartEngaged = CLI.StartEngaged
	cfg.Debug.ShowHUD = !CLI.NoHUD

	tuning := loadTuning(CLI.Config, cfg.Locomotion)

	if err := fonts.LoadDefaults(cfg.HUD.FontSize); err != nil {
		log.Fatal().Err(err).Msg("failed to load HUD font")
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("firstperson")
	ebiten.SetTPS(cfg.C.TPS)

	if err := ebiten.RunGame(NewGame(tuning)); err != nil {
		log.Fatal().Err(err).Msg("game loop exited")
	}
}
