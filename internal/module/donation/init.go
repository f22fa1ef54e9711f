package donation

import (
	"log/slog"

	"ngo-admin-system/internal/global/logger"
)

var log *slog.Logger

type ModuleDonation struct{}

func (d *ModuleDonation) GetName() string {
	return "Donation"
}

func (d *ModuleDonation) Init() {
	log = logger.New("Donation")
}
