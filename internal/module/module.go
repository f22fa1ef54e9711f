package module

import (
	"ngo-admin-system/internal/module/donation"
	"ngo-admin-system/internal/module/ping"
	"ngo-admin-system/internal/module/project"
	"ngo-admin-system/internal/module/report"
	"ngo-admin-system/internal/module/stats"
	"ngo-admin-system/internal/module/task"
	"ngo-admin-system/internal/module/upload"
	"ngo-admin-system/internal/module/user"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&user.ModuleUser{},
		&ping.ModulePing{},
		&project.ModuleProject{},
		&donation.ModuleDonation{},
		&upload.ModuleUpload{},
		&task.ModuleTask{},
		&report.ModuleReport{},
		&stats.ModuleStats{},
	})
}
