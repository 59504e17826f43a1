package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	// 1. Infraestructura
	db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 2. Módulos y rutas
	registerModules(router, db, redisClient, logger)

	return nil
}
