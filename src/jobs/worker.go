package jobs

import (
	"log"
	"os"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server that processes scheduled tasks. It blocks,
// so callers run it on its own goroutine.
func StartWorker() {
	redisURI := os.Getenv("REDIS_URI")
	if redisURI == "" {
		log.Println("REDIS_URI not set. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCloseQuestionnaire, HandleCloseQuestionnaireTask)

	if err := srv.Run(mux); err != nil {
		log.Println("Worker stopped:", err)
	}
}
