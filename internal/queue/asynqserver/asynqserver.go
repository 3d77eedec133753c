package asynqserver

import (
	"github.com/greenpoint/backend/internal/cache"
	"github.com/greenpoint/backend/internal/config"
	"github.com/greenpoint/backend/internal/queue/processor"
	"github.com/greenpoint/backend/internal/queue/task"
	"github.com/greenpoint/backend/internal/worker"

	"github.com/hibiken/asynq"
)

func New(cfg config.Cache, workers *worker.Workers) (*asynq.Server, *asynq.ServeMux) {
	mux, queues := getQueues(workers)
	srv := asynq.NewServer(
		RedisOptions(cfg),
		asynq.Config{
			Concurrency: 10,
			LogLevel:    asynq.ErrorLevel,
			Queues:      queues,
		},
	)

	return srv, mux
}

// NewClient returns a producer connected to the same redis the server consumes from.
func NewClient(cfg config.Cache) *asynq.Client {
	return asynq.NewClient(RedisOptions(cfg))
}

func RedisOptions(cfg config.Cache) asynq.RedisConnOpt {
	var opts asynq.RedisConnOpt
	if cfg.Type == cache.RedisTypeCluster {
		opts = asynq.RedisClusterClientOpt{Addrs: cfg.RedisCluster.Addresses, Password: cfg.RedisCluster.Password}
	} else {
		opts = asynq.RedisClientOpt{Addr: cfg.Redis.Address, Password: cfg.Redis.Password}
	}
	return opts
}

func getQueues(workers *worker.Workers) (*asynq.ServeMux, map[string]int) {
	mux := asynq.NewServeMux()
	mux.Handle(task.PointRegisteredTaskName, processor.NewPointRegisteredProcessor(workers))
	queues := map[string]int{
		task.PointRegisteredQueueName: 1,
	}
	return mux, queues
}
