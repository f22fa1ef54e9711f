package server

import (
	"fmt"
	"log/slog"

	"ngo-admin-system/config"
	"ngo-admin-system/internal/global/cache"
	"ngo-admin-system/internal/global/database"
	"ngo-admin-system/internal/global/httpclient"
	"ngo-admin-system/internal/global/logger"
	"ngo-admin-system/internal/global/middleware"
	"ngo-admin-system/internal/global/notify"
	"ngo-admin-system/internal/module"
	"ngo-admin-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	database.Init()

	cache.Init()
	notify.Init()

	httpclient.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
