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

package flowgraph

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NodeTestSuite struct {
	suite.Suite
}

func TestNodeSuite(t *testing.T) {
	suite.Run(t, new(NodeTestSuite))
}

func (suite *NodeTestSuite) TestMarshalKeepsFlatDataBag() {
	n := NewNode("n1", &DataPayload{
		BaseData:  BaseData{Label: "ERP", Disabled: true},
		Source:    "1C",
		LatencyMs: 40,
	}, Position{X: 10, Y: 20})
	n.ParentNode = "zone"

	raw, err := json.Marshal(n)
	suite.Require().NoError(err)

	var wire map[string]interface{}
	suite.Require().NoError(json.Unmarshal(raw, &wire))
	suite.Equal("n1", wire["id"])
	suite.Equal("data", wire["type"])
	suite.Equal("zone", wire["parentNode"])
	data := wire["data"].(map[string]interface{})
	suite.Equal("ERP", data["label"])
	suite.Equal(true, data["disabled"])
	suite.Equal("1C", data["source"])
	suite.Equal(float64(40), data["latencyMs"])
}

func (suite *NodeTestSuite) TestUnmarshalSelectsPayloadByType() {
	raw := `{"id":"m1","type":"aiModel","position":{"x":1,"y":2},
		"data":{"label":"Vertex","provider":"vertex","tokensIn":10,"costUsd":"0.25","extra":"ignored"}}`

	var n Node
	suite.Require().NoError(json.Unmarshal([]byte(raw), &n))
	suite.Equal(KindAIModel, n.Type)
	model, ok := n.Data.(*AIModelPayload)
	suite.Require().True(ok)
	suite.Equal("Vertex", model.Label)
	suite.Equal(int64(10), model.TokensIn)
	suite.True(model.CostUSD.Equal(decimal.RequireFromString("0.25")))
	suite.Equal(Position{X: 1, Y: 2}, n.Position)
}

func (suite *NodeTestSuite) TestUnmarshalWithoutDataYieldsEmptyPayload() {
	var n Node
	suite.Require().NoError(json.Unmarshal([]byte(`{"id":"z","type":"systemZone","position":{"x":0,"y":0}}`), &n))
	_, ok := n.Data.(*SystemZonePayload)
	suite.True(ok)
	suite.Equal("", n.Base().Label)
}

func (suite *NodeTestSuite) TestUnmarshalUnknownTypeFails() {
	var n Node
	err := json.Unmarshal([]byte(`{"id":"x","type":"spreadsheet","position":{"x":0,"y":0}}`), &n)
	suite.ErrorIs(err, ErrUnknownNodeKind)
}

func (suite *NodeTestSuite) TestCloneIsDeep() {
	n := NewNode("g", &GovernancePayload{Approvers: []string{"CFO"}}, Position{})
	n.Style = &Style{Width: 10}

	c := n.Clone()
	c.Data.(*GovernancePayload).Approvers[0] = "CEO"
	c.Data.Base().Label = "changed"
	c.Style.Width = 20

	suite.Equal("CFO", n.Data.(*GovernancePayload).Approvers[0])
	suite.Equal("", n.Base().Label)
	suite.Equal(float64(10), n.Style.Width)
}

func (suite *NodeTestSuite) TestEdgeCloneCopiesData() {
	e := Edge{ID: "e", Source: "a", Target: "b", Data: map[string]interface{}{"weight": 1}}
	c := e.Clone()
	c.Data["weight"] = 2
	suite.Equal(1, e.Data["weight"])
}
