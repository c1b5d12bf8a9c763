package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с настройками logrus по умолчанию.
var Log = logrus.New()

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте приложения (и в TestMain пакетов).
//
//	LOG_LEVEL  - уровень (debug, info, warn...). По умолчанию "info".
//	LOG_FORMAT - "json" для продакшена, иначе текстовый формат.
func Init() {
	level, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		level = "info"
	}
	Configure(level, os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure пересоздает глобальный логгер с явными параметрами.
// Нужен там, где stdout занят: в TTY-режиме экран принадлежит tcell,
// поэтому логи уходят в файл.
func Configure(level, format string, out io.Writer) {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   out == os.Stdout,
		})
	}

	if out == nil {
		out = io.Discard
	}
	l.SetOutput(out)

	Log = l
}
