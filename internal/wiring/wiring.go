// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mia/internal/adapters/config"
	_ "go.trai.ch/mia/internal/adapters/download"
	_ "go.trai.ch/mia/internal/adapters/fdroid"
	_ "go.trai.ch/mia/internal/adapters/lockfile"
	_ "go.trai.ch/mia/internal/adapters/logger"
	_ "go.trai.ch/mia/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/mia/internal/app"
	_ "go.trai.ch/mia/internal/engine/locker"
)
