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
	"errors"
	"sync"

	"github.com/socar-georgia/finsight/internal/system/log"
)

const subscriberBufferSize = 16

// ErrBrokerClosed is returned when the broker has been closed.
var ErrBrokerClosed = errors.New("broker is closed")

// inMemoryBroker fans messages out to subscribers inside the current process.
type inMemoryBroker struct {
	mu          sync.RWMutex
	subscribers map[string]map[*inMemorySubscription]struct{}
	closed      bool
}

// NewInMemoryBroker creates a broker that only reaches subscribers in this process.
func NewInMemoryBroker() BrokerInterface {
	return &inMemoryBroker{
		subscribers: make(map[string]map[*inMemorySubscription]struct{}),
	}
}

// Publish delivers the payload to every current subscriber of the channel.
// Slow subscribers whose buffer is full miss the message.
func (b *inMemoryBroker) Publish(ctx context.Context, channel string, payload []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBrokerClosed
	}

	for sub := range b.subscribers[channel] {
		msg := Message{Channel: channel, Payload: append([]byte(nil), payload...)}
		select {
		case sub.messages <- msg:
		case <-ctx.Done():
			return ctx.Err()
		default:
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryBroker")).
				Warn("Dropping message for slow subscriber", log.String("channel", channel))
		}
	}
	return nil
}

// Subscribe registers a new subscriber for the channel.
func (b *inMemoryBroker) Subscribe(_ context.Context, channel string) (SubscriptionInterface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, ErrBrokerClosed
	}

	sub := &inMemorySubscription{
		broker:   b,
		channel:  channel,
		messages: make(chan Message, subscriberBufferSize),
	}
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[*inMemorySubscription]struct{})
	}
	b.subscribers[channel][sub] = struct{}{}
	return sub, nil
}

// Close closes every open subscription.
func (b *inMemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	for _, subs := range b.subscribers {
		for sub := range subs {
			sub.closeLocked()
		}
	}
	b.subscribers = make(map[string]map[*inMemorySubscription]struct{})
	return nil
}

func (b *inMemoryBroker) remove(sub *inMemorySubscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if subs, ok := b.subscribers[sub.channel]; ok {
		if _, ok := subs[sub]; ok {
			delete(subs, sub)
			sub.closeLocked()
		}
		if len(subs) == 0 {
			delete(b.subscribers, sub.channel)
		}
	}
}

type inMemorySubscription struct {
	broker   *inMemoryBroker
	channel  string
	messages chan Message
	once     sync.Once
}

func (s *inMemorySubscription) Messages() <-chan Message {
	return s.messages
}

func (s *inMemorySubscription) Close() error {
	s.broker.remove(s)
	return nil
}

// closeLocked closes the message channel; the broker lock must be held.
func (s *inMemorySubscription) closeLocked() {
	s.once.Do(func() { close(s.messages) })
}
