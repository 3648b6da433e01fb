package engine

import (
	"os"
	"testing"

	"harvest-sun/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
