/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package broker

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/socar-georgia/finsight/internal/system/log"
)

// redisBroker publishes over Redis pub/sub so every server instance sees flow changes.
type redisBroker struct {
	client *redis.Client
	prefix string
}

// NewRedisBroker creates a broker backed by Redis pub/sub. Channel names are prefixed.
func NewRedisBroker(client *redis.Client, prefix string) BrokerInterface {
	return &redisBroker{client: client, prefix: prefix}
}

func (b *redisBroker) channelName(channel string) string {
	if b.prefix == "" {
		return channel
	}
	return b.prefix + ":" + channel
}

// Publish sends the payload to the prefixed channel.
func (b *redisBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.client.Publish(ctx, b.channelName(channel), payload).Err()
}

// Subscribe opens a Redis subscription and waits for its confirmation.
func (b *redisBroker) Subscribe(ctx context.Context, channel string) (SubscriptionInterface, error) {
	ps := b.client.Subscribe(ctx, b.channelName(channel))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	sub := &redisSubscription{
		pubsub:   ps,
		channel:  channel,
		messages: make(chan Message, subscriberBufferSize),
		done:     make(chan struct{}),
	}
	go sub.pump()
	return sub, nil
}

// Close is a no-op; the shared client is closed by its owner.
func (b *redisBroker) Close() error {
	return nil
}

type redisSubscription struct {
	pubsub   *redis.PubSub
	channel  string
	messages chan Message
	done     chan struct{}
	once     sync.Once
}

// pump forwards Redis messages until the subscription is closed.
func (s *redisSubscription) pump() {
	defer close(s.messages)
	in := s.pubsub.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-in:
			if !ok {
				return
			}
			select {
			case s.messages <- Message{Channel: s.channel, Payload: []byte(msg.Payload)}:
			case <-s.done:
				return
			default:
				log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RedisBroker")).
					Warn("Dropping message for slow subscriber", log.String("channel", s.channel))
			}
		}
	}
}

func (s *redisSubscription) Messages() <-chan Message {
	return s.messages
}

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.pubsub.Close()
	})
	return err
}
