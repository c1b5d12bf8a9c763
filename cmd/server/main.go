package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/otricadziziusz/roguelike-tutorial/internal/agent"
	"github.com/otricadziziusz/roguelike-tutorial/internal/console"
	"github.com/otricadziziusz/roguelike-tutorial/internal/engine"
	"github.com/otricadziziusz/roguelike-tutorial/internal/floor"
	"github.com/otricadziziusz/roguelike-tutorial/internal/network"
	"github.com/otricadziziusz/roguelike-tutorial/internal/server"
	"github.com/otricadziziusz/roguelike-tutorial/internal/version"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/dungeon"
	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	cfg := engine.NewConfig()
	gen := dungeon.DefaultConfig(0)

	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Floor seed (0 for random)")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "Screen width in cells")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "Screen height in cells")
	flag.IntVar(&gen.Width, "map-width", gen.Width, "Floor width")
	flag.IntVar(&gen.Height, "map-height", gen.Height, "Floor height")
	flag.IntVar(&gen.Monsters, "monsters", gen.Monsters, "Monsters to spawn")
	flag.IntVar(&gen.Items, "items", gen.Items, "Items to spawn")
	flag.IntVar(&cfg.FOVRadius, "radius", cfg.FOVRadius, "Player FOV radius")
	flag.BoolVar(&cfg.TTY, "tty", false, "Render to the terminal instead of headless mode")
	flag.BoolVar(&cfg.Arena, "arena", false, "Single open room instead of rooms and corridors")
	flag.IntVar(&cfg.MaxTurns, "turns", 0, "Stop after N turns (0 = unlimited)")
	flag.DurationVar(&cfg.TurnDelay, "delay", cfg.TurnDelay, "Pause after each turn")
	flag.StringVar(&cfg.Port, "port", cfg.Port, "Spectator server port")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file for TTY mode")
	flag.Parse()

	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random seed: %d", cfg.Seed)
	}
	gen.Seed = cfg.Seed

	logger.Log.Info("Starting roguelike...")
	logger.Log.Info(version.String())

	// Graceful Shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 2. Этаж
	f, err := generate(gen, cfg.Arena)
	if err != nil {
		logger.Log.WithError(err).Fatal("Floor generation failed")
	}
	f.FOVRadius = cfg.FOVRadius
	f.UpdateFOV()

	// 3. Очередь ходов и модель
	tm := engine.NewTurnManager(f, cfg.Seed)
	for _, a := range f.Actors() {
		tm.AddActor(a, agent.Wanderer{WaitChance: 0.2})
	}

	m := engine.NewModel(f, tm, &engine.GameOver{Cancel: cancel})
	tm.Reporter = m

	// 4. Зрители
	hub := network.NewBroadcaster()
	state := server.NewState()
	observers := engine.Observers{
		server.NewSpectator(hub, state, cfg.ScreenSize()).WithTurnManager(tm),
	}

	if cfg.TTY {
		con, err := openConsole(cfg)
		if err != nil {
			logger.Log.WithError(err).Fatal("Terminal init failed")
		}
		defer con.Close()

		m.Sink = con
		observers = append(observers, con)
		go con.PollQuit(ctx, cancel)
	}
	observers = append(observers, &engine.Pacer{MaxTurns: cfg.MaxTurns, Delay: cfg.TurnDelay, Cancel: cancel})
	m.Observer = observers

	srv := server.New(hub, state, cfg.Port)
	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.Log.WithError(err).Error("Server stopped")
			cancel()
		}
	}()

	m.Report("Добро пожаловать в подземелье!")
	m.Observer.TurnCompleted(m)

	// 5. Игровой цикл
	if err := m.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("Game loop failed")
	}

	logger.Log.WithField("turns", m.Turns()).Info("Done.")
}

func generate(gen dungeon.Config, arena bool) (*floor.Floor, error) {
	if arena {
		return dungeon.GenerateArena(gen)
	}
	return dungeon.Generate(gen)
}

// openConsole забирает терминал под tcell, логи при этом уходят в файл.
func openConsole(cfg engine.Config) (*console.Console, error) {
	out, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger.Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), out)

	// Последняя строка экрана - строка статуса
	screen := cfg.ScreenSize()
	screen.Height--
	return console.Open(screen)
}
