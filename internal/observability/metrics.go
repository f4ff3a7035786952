package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliptube_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// VoteToggles counts vote toggle operations by outcome.
	VoteToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliptube_vote_toggles_total",
		Help: "Total number of vote toggle operations by outcome",
	}, []string{"outcome"})

	// SubscriptionToggles counts subscription toggle operations by outcome.
	SubscriptionToggles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliptube_subscription_toggles_total",
		Help: "Total number of subscription toggle operations by outcome",
	}, []string{"outcome"})

	// VideoViews counts view-count increments.
	VideoViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cliptube_video_views_total",
		Help: "Total number of video view-count increments",
	})

	// MediaUploads counts media uploads by kind and result.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cliptube_media_uploads_total",
		Help: "Total number of media uploads by kind and result",
	}, []string{"kind", "result"})
)
