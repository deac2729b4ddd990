package service

import (
	"context"
	"encoding/json"
	"time"

	"wedding-portal-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const TopicGuestAccessed = "guest_accessed"

type IPublisherService interface {
	PublishGuestAccessed(ctx context.Context, guestId uuid.UUID, at time.Time) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishGuestAccessed(ctx context.Context, guestId uuid.UUID, at time.Time) error {
	payload, err := json.Marshal(dto.GuestAccessedMessage{GuestId: guestId, AccessedAt: at})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)
	return ps.pubSub.Publish(ps.topicName, msg)
}
