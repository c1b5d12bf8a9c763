package render

import (
	"os"
	"testing"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
