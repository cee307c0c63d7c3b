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
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type InMemoryBrokerTestSuite struct {
	suite.Suite
	broker BrokerInterface
}

func TestInMemoryBrokerSuite(t *testing.T) {
	suite.Run(t, new(InMemoryBrokerTestSuite))
}

func (suite *InMemoryBrokerTestSuite) SetupTest() {
	suite.broker = NewInMemoryBroker()
}

func (suite *InMemoryBrokerTestSuite) TearDownTest() {
	suite.NoError(suite.broker.Close())
}

func (suite *InMemoryBrokerTestSuite) receive(sub SubscriptionInterface) (Message, bool) {
	select {
	case msg, ok := <-sub.Messages():
		return msg, ok
	case <-time.After(time.Second):
		suite.Fail("timed out waiting for message")
		return Message{}, false
	}
}

func (suite *InMemoryBrokerTestSuite) TestPublishReachesEverySubscriber() {
	ctx := context.Background()
	a, err := suite.broker.Subscribe(ctx, "flow:c1:main")
	suite.Require().NoError(err)
	b, err := suite.broker.Subscribe(ctx, "flow:c1:main")
	suite.Require().NoError(err)
	other, err := suite.broker.Subscribe(ctx, "flow:c1:other")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.broker.Publish(ctx, "flow:c1:main", []byte("v2")))

	msg, ok := suite.receive(a)
	suite.True(ok)
	suite.Equal("v2", string(msg.Payload))
	msg, ok = suite.receive(b)
	suite.True(ok)
	suite.Equal("flow:c1:main", msg.Channel)

	select {
	case <-other.Messages():
		suite.Fail("unexpected message on other channel")
	default:
	}
}

func (suite *InMemoryBrokerTestSuite) TestCloseSubscriptionClosesChannel() {
	sub, err := suite.broker.Subscribe(context.Background(), "ch")
	suite.Require().NoError(err)

	suite.NoError(sub.Close())
	suite.NoError(sub.Close())

	_, ok := <-sub.Messages()
	suite.False(ok)
	suite.NoError(suite.broker.Publish(context.Background(), "ch", []byte("x")))
}

func (suite *InMemoryBrokerTestSuite) TestSlowSubscriberDoesNotBlockPublisher() {
	sub, err := suite.broker.Subscribe(context.Background(), "ch")
	suite.Require().NoError(err)

	for i := 0; i < subscriberBufferSize+5; i++ {
		suite.NoError(suite.broker.Publish(context.Background(), "ch", []byte("x")))
	}
	suite.Len(sub.Messages(), subscriberBufferSize)
}

func (suite *InMemoryBrokerTestSuite) TestClosedBrokerRejects() {
	b := NewInMemoryBroker()
	suite.NoError(b.Close())
	_, err := b.Subscribe(context.Background(), "ch")
	suite.ErrorIs(err, ErrBrokerClosed)
	suite.ErrorIs(b.Publish(context.Background(), "ch", nil), ErrBrokerClosed)
}
