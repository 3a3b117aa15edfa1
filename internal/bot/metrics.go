package bot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	messagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_messages_total",
		Help: "Chat messages handled, by classified command.",
	}, []string{"command"})

	storeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_store_failures_total",
		Help: "Document store operations that failed while handling a message.",
	})
)
