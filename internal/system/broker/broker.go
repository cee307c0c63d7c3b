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

// Package broker provides publish/subscribe change notification between server instances.
package broker

import (
	"context"
)

// Message is a payload received on a channel.
type Message struct {
	Channel string
	Payload []byte
}

// BrokerInterface publishes payloads and opens channel subscriptions.
type BrokerInterface interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) (SubscriptionInterface, error)
	Close() error
}

// SubscriptionInterface delivers messages for one channel until closed.
type SubscriptionInterface interface {
	Messages() <-chan Message
	Close() error
}
