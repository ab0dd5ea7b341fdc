// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"feature-flag-be/internal/repository/specification"
	"feature-flag-be/internal/repository/unitofwork"
	"feature-flag-be/pkg/cache"
	"feature-flag-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService re-warms the raw flag cache after mutations. The read
// path stays correct without it (repopulate-on-miss); warming only narrows
// the window in which readers pay the repository round-trip.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	flagCache  cache.FlagCache
	cacheTTL   time.Duration
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	flagCache cache.FlagCache,
	cacheTTL time.Duration,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		flagCache:  flagCache,
		cacheTTL:   cacheTTL,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload events.FlagChangedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal flag change event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Warming flag cache for tenant '%s' env '%s' (%s)", payload.TenantName, payload.Env, payload.Action)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	flags, err := uow.FeatureFlagRepository().FindAll(ctx,
		specification.ByTenantID{TenantID: payload.TenantId},
		specification.ByEnv{Env: payload.Env},
		specification.OrderBy{Field: "feature_flags.updated_at", Desc: true},
	)
	if err != nil {
		log.Printf("[ERROR] Failed to load flags for cache warm: %v", err)
		msg.Nack()
		return
	}

	if len(flags) == 0 {
		// Nothing to project; the invalidation already removed the key.
		msg.Ack()
		return
	}

	raw, err := json.Marshal(flagsToResponses(flags))
	if err != nil {
		log.Printf("[ERROR] Failed to marshal flags for cache warm: %v", err)
		msg.Ack()
		return
	}

	key := cache.RawFlagKey(payload.TenantName, payload.Env)
	if err := cs.flagCache.Set(ctx, key, string(raw), cs.cacheTTL); err != nil {
		log.Printf("[WARN] Failed to warm cache key %s: %v", key, err)
		msg.Nack()
		return
	}

	msg.Ack()
}
