package scheduler

import (
	"context"
	"fmt"
	"net/http"

	"booking-engine/config"
	"booking-engine/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeRecheckPayment = "recheck_payment"
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// MonitoringHandler serves the asynqmon dashboard under /monitoring.
func (s *Scheduler) MonitoringHandler(cfg *config.RedisConfig) *asynqmon.HTTPHandler {
	return asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})
}

func (s *Scheduler) StartMonitoring(redisCfg *config.RedisConfig, appCfg *config.AppConfig) {
	ctx := context.Background()
	h := s.MonitoringHandler(redisCfg)

	mux := http.NewServeMux()
	// trailing slash so the dashboard assets resolve under the root path
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+appCfg.MonitoringPort, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)

	if err := srv.Run(s.Mux(taskTypes, handlerFunc)); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

// Mux maps each task type to the handler at the same index.
func (s *Scheduler) Mux(taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	for i, taskType := range taskTypes {
		mux.HandleFunc(taskType, handlerFunc[i])
	}
	return mux
}
