package task

import (
	"log/slog"

	"ngo-admin-system/internal/global/logger"
)

var log *slog.Logger

type ModuleTask struct{}

func (t *ModuleTask) GetName() string {
	return "Task"
}

func (t *ModuleTask) Init() {
	log = logger.New("Task")
}
