package upload

import (
	"log/slog"

	"ngo-admin-system/internal/global/logger"
	"ngo-admin-system/internal/global/mediastore"
)

var log *slog.Logger

type ModuleUpload struct{}

func (u *ModuleUpload) GetName() string {
	return "Upload"
}

func (u *ModuleUpload) Init() {
	log = logger.New("Upload")
	mediastore.Init()
}
