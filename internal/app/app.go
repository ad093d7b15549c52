package app

import (
	"os"
	"strconv"
	"time"

	"github.com/CASADINKE/eiffagerh-sub000/internal/middleware"
	"github.com/CASADINKE/eiffagerh-sub000/internal/payroll"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	return registerModules(router, db, gormDB, redisClient, payrollConfigFromEnv())
}

// payrollConfigFromEnv reads the workflow knobs. Defaults are the permissive
// workflow with a 5 second database budget per operation.
func payrollConfigFromEnv() payroll.Config {
	cfg := payroll.Config{
		OpTimeout:   5 * time.Second,
		DocumentDir: os.Getenv("PAYSLIP_DOCUMENT_DIR"),
	}

	if v, err := strconv.ParseBool(os.Getenv("PAYROLL_STRICT_TRANSITIONS")); err == nil {
		cfg.StrictTransitions = v
	}
	if v, err := time.ParseDuration(os.Getenv("PAYROLL_OP_TIMEOUT")); err == nil && v > 0 {
		cfg.OpTimeout = v
	}

	return cfg
}
