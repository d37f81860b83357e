package main

import (
	"context"
	"os"

	"github.com/yigit/courseplanner/internal/pkg/logger"
)

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		logger.Error().Err(err).Msg("Course planner failed")
		os.Exit(1)
	}
}
