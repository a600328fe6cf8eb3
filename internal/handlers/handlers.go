package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pubg-dashboard/stats-api/internal/dashboard"
	"github.com/pubg-dashboard/stats-api/internal/limiter"
	"github.com/pubg-dashboard/stats-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 64KB
const MaxBodySize = 65536

// JobQueue reports the depth of the acquisition worker pool
type JobQueue interface {
	QueueDepth() int
}

type Config struct {
	Acquisition    logic.AcquisitionService
	Sessions       *dashboard.Manager
	WorkerPool     JobQueue
	Redis          *redis.Client
	Limiter        limiter.Limiter
	AllowedOrigins []string
	Logger         *zap.Logger
}

type Handler struct {
	acquisition    logic.AcquisitionService
	sessions       *dashboard.Manager
	pool           JobQueue
	redis          *redis.Client
	limiter        limiter.Limiter
	allowedOrigins []string
	logger         *zap.SugaredLogger
	validator      *validator.Validate
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		acquisition:    cfg.Acquisition,
		sessions:       cfg.Sessions,
		pool:           cfg.WorkerPool,
		redis:          cfg.Redis,
		limiter:        cfg.Limiter,
		allowedOrigins: cfg.AllowedOrigins,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
	}
}
