package engine

import (
	"os"
	"time"

	"github.com/otricadziziusz/roguelike-tutorial/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генератора этажа и случайных контроллеров.
	Seed int64

	// Размер экрана (кадра), который рисует компоновщик.
	ScreenWidth  int
	ScreenHeight int

	// FOVRadius - радиус поля зрения игрока.
	FOVRadius int

	// Port - порт HTTP-сервера зрителей.
	Port string

	// TTY - рисовать в терминал через tcell вместо headless-режима.
	TTY bool

	// MaxTurns - остановиться после стольких ходов (0 - без лимита).
	MaxTurns int

	// TurnDelay - пауза после каждого хода, чтобы зрители успевали смотреть.
	TurnDelay time.Duration

	// Arena - этаж из одной комнаты вместо комнат с коридорами.
	Arena bool

	// LogFile - куда писать логи в TTY-режиме.
	LogFile string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	port := os.Getenv("CD_PORT")
	if port == "" {
		port = "8080"
	}
	return Config{
		Seed:         time.Now().UnixNano(),
		ScreenWidth:  80,
		ScreenHeight: 24,
		FOVRadius:    domain.VisionRadius,
		Port:         port,
		TurnDelay:    100 * time.Millisecond,
		LogFile:      "roguelike.log",
	}
}

// ScreenSize - размер кадра.
func (c Config) ScreenSize() domain.Size {
	return domain.Size{Width: c.ScreenWidth, Height: c.ScreenHeight}
}
