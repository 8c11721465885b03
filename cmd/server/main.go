package main

import (
	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sumobuild/internal/api"
	"sumobuild/internal/config"
	"sumobuild/internal/reference"
	"sumobuild/internal/scenario"
)

var log = logrus.WithField("module", "server")

func main() {
	// .env, если лежит рядом (удобно при локальном запуске)
	_ = godotenv.Load()

	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})

	cfg := config.LoadWithPath("config.json")
	gin.SetMode(cfg.GinMode)

	// 1. Загружаем enum-справочники
	enums, err := reference.LoadEnumCatalog(cfg.EnumsDir)
	if err != nil {
		log.Fatalf("can not load enum catalog: %v", err)
	}
	log.Infof("loaded %d enum directories", len(enums))

	// 2. Инициализируем сессию с дефолтным сценарием
	store := scenario.NewStore(scenario.Project{
		Name:           cfg.ProjectName,
		DrivingSide:    cfg.DrivingSide,
		NetFile:        cfg.NetFile,
		RouteFile:      cfg.RouteFile,
		AdditionalFile: cfg.AdditionalFile,
		ConfigFile:     cfg.ConfigFile,
	})

	// 3. Запускаем REST API сервер
	log.Infof("starting sumobuild on :%s", cfg.Port)
	if err := api.RunServer(":"+cfg.Port, store, enums); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
