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

package canvas

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	"github.com/socar-georgia/finsight/internal/flowstore"
	"github.com/socar-georgia/finsight/tests/mocks/flowstoremock"
)

type ControllerTestSuite struct {
	suite.Suite
	store *flowstoremock.FlowStoreInterfaceMock
	ctrl  *Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (suite *ControllerTestSuite) SetupTest() {
	suite.store = flowstoremock.NewFlowStoreInterfaceMock(suite.T())
	suite.ctrl = NewController(suite.store, "c1", "main", "user-1", flowstore.PolicyLastWriteWins)
	suite.ctrl.ApplySnapshot(suite.snapshot(1))
}

func (suite *ControllerTestSuite) snapshot(version int64) flowstore.Snapshot {
	zone := flowgraph.NewNode("zone", &flowgraph.SystemZonePayload{}, flowgraph.Position{})
	src := flowgraph.NewNode("src", &flowgraph.DataPayload{
		BaseData: flowgraph.BaseData{Label: "ERP", Status: "live"},
		Source:   "1C",
	}, flowgraph.Position{X: 10, Y: 10})
	src.ParentNode = "zone"
	ai := flowgraph.NewNode("ai", &flowgraph.AIPayload{BaseData: flowgraph.BaseData{Label: "Copilot"}},
		flowgraph.Position{X: 200, Y: 10})
	return flowstore.Snapshot{
		Nodes:   []flowgraph.Node{zone, src, ai},
		Edges:   []flowgraph.Edge{{ID: "e1", Source: "src", Target: "ai"}},
		Version: version,
	}
}

func (suite *ControllerTestSuite) card(view View, id string) flowgraph.Card {
	for _, c := range view.Nodes {
		if c.NodeID == id {
			return c
		}
	}
	suite.FailNow("card not found", id)
	return flowgraph.Card{}
}

func (suite *ControllerTestSuite) edge(view View, id string) EdgeView {
	for _, e := range view.Edges {
		if e.ID == id {
			return e
		}
	}
	suite.FailNow("edge not found", id)
	return EdgeView{}
}

func (suite *ControllerTestSuite) TestClickSelectsAndBackgroundClears() {
	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	suite.Equal(Selection{Kind: SelectionNode, ID: "src"}, suite.ctrl.Selection())
	suite.NotNil(suite.ctrl.OpenInspector(suite.ctrl))

	suite.ctrl.ClickBackground()
	suite.True(suite.ctrl.Selection().IsEmpty())
	suite.Nil(suite.ctrl.OpenInspector(suite.ctrl))

	suite.Require().NoError(suite.ctrl.ClickEdge("e1"))
	suite.Equal(Selection{Kind: SelectionEdge, ID: "e1"}, suite.ctrl.Selection())

	suite.ErrorIs(suite.ctrl.ClickNode("ghost"), ErrElementNotFound)
	suite.Equal(SelectionEdge, suite.ctrl.Selection().Kind)
}

func (suite *ControllerTestSuite) TestInspectorPatchPreservesOtherKeys() {
	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	inspector := suite.ctrl.OpenInspector(suite.ctrl)
	suite.Require().NotNil(inspector)

	suite.Require().NoError(inspector.Update("src", map[string]interface{}{"disabled": true}))

	card := suite.card(suite.ctrl.View(), "src")
	suite.True(card.Disabled)
	suite.Equal("ERP", card.Header.Label)
	suite.Equal(flowgraph.StatusDisabled, card.Header.Status)

	el, err := inspector.Element()
	suite.Require().NoError(err)
	suite.Equal(true, el.Data["disabled"])
	suite.Equal("ERP", el.Data["label"])
	suite.Equal("1C", el.Data["source"])
	suite.Equal([]string{"patch node src"}, suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestGovernanceToggles() {
	suite.Require().NoError(suite.ctrl.ClickNode("ai"))
	inspector := suite.ctrl.OpenInspector(suite.ctrl)
	suite.Require().NoError(inspector.SetLocked(true))
	suite.Require().NoError(inspector.SetDisabled(true))
	suite.Require().NoError(inspector.SetDisabled(false))

	base := suite.ctrl.Nodes()[2].Base()
	suite.True(base.Locked)
	suite.False(base.Disabled)
	suite.Equal("Copilot", base.Label)

	suite.Require().NoError(suite.ctrl.ClickEdge("e1"))
	edgeInspector := suite.ctrl.OpenInspector(suite.ctrl)
	suite.ErrorIs(edgeInspector.SetDisabled(true), ErrNotANode)
}

func (suite *ControllerTestSuite) TestReadOnlyInspectorRejectsPatches() {
	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	inspector := suite.ctrl.OpenInspector(nil)
	suite.True(inspector.ReadOnly())
	suite.ErrorIs(inspector.Update("src", map[string]interface{}{"label": "x"}), ErrReadOnly)
	suite.Empty(suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestInspectorPatchErrors() {
	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	inspector := suite.ctrl.OpenInspector(suite.ctrl)
	suite.ErrorIs(inspector.Update("ghost", map[string]interface{}{"label": "x"}), ErrElementNotFound)
	suite.ErrorIs(inspector.Update("src", map[string]interface{}{"tokenUsage": 5}), flowgraph.ErrUnknownAttribute)
	suite.Empty(suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestEdgeInspectorMergesBag() {
	suite.Require().NoError(suite.ctrl.ClickEdge("e1"))
	inspector := suite.ctrl.OpenInspector(suite.ctrl)
	suite.Require().NoError(inspector.Update("e1", map[string]interface{}{"label": "feeds"}))
	suite.Require().NoError(inspector.Update("e1", map[string]interface{}{"weight": 2}))

	el, err := inspector.Element()
	suite.Require().NoError(err)
	suite.Equal(map[string]interface{}{"label": "feeds", "weight": 2}, el.Data)
}

func (suite *ControllerTestSuite) TestInspectorCloseClearsSelection() {
	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	suite.ctrl.OpenInspector(suite.ctrl).Close()
	suite.True(suite.ctrl.Selection().IsEmpty())
}

func (suite *ControllerTestSuite) TestActivePathHighlightIsAdditive() {
	suite.ctrl.SetActivePath(NewActivePath([]string{"ai"}, []string{"e1"}))
	view := suite.ctrl.View()
	suite.True(suite.card(view, "ai").Active)
	suite.False(suite.card(view, "ai").Selected)
	suite.True(suite.edge(view, "e1").Active)
	suite.False(suite.card(view, "src").Active)

	suite.Require().NoError(suite.ctrl.ClickNode("src"))
	view = suite.ctrl.View()
	suite.True(suite.card(view, "src").Active)
	suite.True(suite.card(view, "ai").Active)

	suite.ctrl.SetActivePath(NewActivePath(nil, nil))
	view = suite.ctrl.View()
	suite.False(suite.card(view, "ai").Active)
	suite.False(suite.edge(view, "e1").Active)
	suite.True(suite.card(view, "src").Active)
}

func (suite *ControllerTestSuite) TestNodeChanges() {
	err := suite.ctrl.ApplyNodeChanges([]NodeChange{
		{Type: NodeChangePosition, ID: "ai", Position: &flowgraph.Position{X: 1, Y: 1}},
		{Type: NodeChangePosition, ID: "ai", Position: &flowgraph.Position{X: 2, Y: 2}},
		{Type: NodeChangeDimensions, ID: "zone", Dimensions: &flowgraph.Style{Width: 400, Height: 300}},
		{Type: NodeChangeAdd, Item: &flowgraph.Node{ID: "gov", Type: flowgraph.KindGovernance}},
	})
	suite.Require().NoError(err)

	nodes := suite.ctrl.Nodes()
	suite.Len(nodes, 4)
	suite.Equal(flowgraph.Position{X: 2, Y: 2}, nodes[2].Position)
	suite.Equal(float64(400), nodes[0].Style.Width)
	suite.NotNil(nodes[3].Data)
	suite.Equal([]string{"move node ai", "resize node zone", "add node gov"}, suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestRemoveNodeDropsEdgesAndSelection() {
	suite.Require().NoError(suite.ctrl.ClickNode("ai"))
	suite.Require().NoError(suite.ctrl.ApplyNodeChanges([]NodeChange{{Type: NodeChangeRemove, ID: "ai"}}))

	suite.Empty(suite.ctrl.Edges())
	suite.True(suite.ctrl.Selection().IsEmpty())

	suite.Require().NoError(suite.ctrl.ApplyNodeChanges([]NodeChange{{Type: NodeChangeRemove, ID: "zone"}}))
	suite.Equal("", suite.ctrl.Nodes()[0].ParentNode)
}

func (suite *ControllerTestSuite) TestInvalidChanges() {
	suite.ErrorIs(suite.ctrl.ApplyNodeChanges([]NodeChange{{Type: NodeChangePosition, ID: "ai"}}), ErrInvalidChange)
	suite.ErrorIs(suite.ctrl.ApplyNodeChanges([]NodeChange{{Type: "spin", ID: "ai"}}), ErrInvalidChange)
	suite.ErrorIs(suite.ctrl.ApplyNodeChanges([]NodeChange{
		{Type: NodeChangeAdd, Item: &flowgraph.Node{ID: "ai", Type: flowgraph.KindAI}},
	}), flowgraph.ErrDuplicateNodeID)
	suite.ErrorIs(suite.ctrl.ApplyEdgeChanges([]EdgeChange{
		{Type: EdgeChangeAdd, Item: &flowgraph.Edge{ID: "e2", Source: "zone", Target: "ai"}},
	}), flowgraph.ErrNotConnectable)
	suite.ErrorIs(suite.ctrl.ApplyEdgeChanges([]EdgeChange{{Type: EdgeChangeRemove, ID: "ghost"}}),
		ErrElementNotFound)
	suite.Empty(suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestSelectChanges() {
	suite.Require().NoError(suite.ctrl.ApplyEdgeChanges([]EdgeChange{{Type: EdgeChangeSelect, ID: "e1", Selected: true}}))
	suite.Equal(Selection{Kind: SelectionEdge, ID: "e1"}, suite.ctrl.Selection())
	suite.Require().NoError(suite.ctrl.ApplyEdgeChanges([]EdgeChange{{Type: EdgeChangeSelect, ID: "e1"}}))
	suite.True(suite.ctrl.Selection().IsEmpty())
	suite.Empty(suite.ctrl.Pending())
}

func (suite *ControllerTestSuite) TestConnectGeneratesUniqueIDs() {
	first, err := suite.ctrl.Connect(Connection{Source: "src", Target: "ai"})
	suite.Require().NoError(err)
	second, err := suite.ctrl.Connect(Connection{Source: "src", Target: "ai"})
	suite.Require().NoError(err)

	suite.Equal("e-src-ai", first.ID)
	suite.Equal("e-src-ai-2", second.ID)
	suite.Len(suite.ctrl.Edges(), 3)

	_, err = suite.ctrl.Connect(Connection{Source: "src", Target: "ghost"})
	suite.ErrorIs(err, flowgraph.ErrDanglingEdge)
}

func (suite *ControllerTestSuite) TestRemoteSnapshotReplaysPendingCommands() {
	suite.Require().NoError(suite.ctrl.ApplyNodeChanges([]NodeChange{
		{Type: NodeChangePosition, ID: "src", Position: &flowgraph.Position{X: 99, Y: 99}},
		{Type: NodeChangePosition, ID: "ai", Position: &flowgraph.Position{X: 50, Y: 50}},
	}))
	suite.Require().NoError(suite.ctrl.UpdateData(SelectionNode, "src", map[string]interface{}{"label": "ERP v2"}))

	remote := suite.snapshot(2)
	remote.Nodes = remote.Nodes[:2]
	remote.Edges = nil
	remote.Nodes[1].Data.Base().Status = "error"
	suite.ctrl.ApplySnapshot(remote)

	nodes := suite.ctrl.Nodes()
	suite.Len(nodes, 2)
	suite.Equal(flowgraph.Position{X: 99, Y: 99}, nodes[1].Position)
	suite.Equal("ERP v2", nodes[1].Base().Label)
	suite.Equal("error", nodes[1].Base().Status)
	suite.Equal([]string{"move node src", "patch node src"}, suite.ctrl.Pending())
	suite.Equal(int64(2), suite.ctrl.BaseVersion())
}

func (suite *ControllerTestSuite) TestRemoteDeletionClearsSelection() {
	suite.Require().NoError(suite.ctrl.ClickEdge("e1"))
	remote := suite.snapshot(2)
	remote.Edges = nil
	suite.ctrl.ApplySnapshot(remote)
	suite.True(suite.ctrl.Selection().IsEmpty())
}

func (suite *ControllerTestSuite) TestStaleAndFallbackSnapshotsIgnored() {
	older := suite.snapshot(0)
	older.Nodes = nil
	suite.ctrl.ApplySnapshot(older)
	suite.Len(suite.ctrl.Nodes(), 3)

	nodes, edges := flowgraph.DefaultGraph()
	suite.ctrl.ApplySnapshot(flowstore.Snapshot{Nodes: nodes, Edges: edges, Fallback: true})
	suite.Len(suite.ctrl.Nodes(), 3)
	suite.False(suite.ctrl.View().Fallback)
}

func (suite *ControllerTestSuite) TestFlushPersistsWorkingCopy() {
	suite.Require().NoError(suite.ctrl.ApplyNodeChanges([]NodeChange{
		{Type: NodeChangePosition, ID: "ai", Position: &flowgraph.Position{X: 5, Y: 5}},
	}))

	suite.store.On("Save", mock.Anything, "c1", "main",
		mock.MatchedBy(func(nodes []flowgraph.Node) bool {
			return len(nodes) == 3 && nodes[2].Position == flowgraph.Position{X: 5, Y: 5}
		}),
		mock.MatchedBy(func(edges []flowgraph.Edge) bool { return len(edges) == 1 }),
		flowstore.SaveOptions{ExpectedVersion: 1, Policy: flowstore.PolicyLastWriteWins, UpdatedBy: "user-1"},
	).Return(int64(2), nil).Once()

	version, err := suite.ctrl.Flush(context.Background())
	suite.Require().NoError(err)
	suite.Equal(int64(2), version)
	suite.Empty(suite.ctrl.Pending())
	suite.Equal(int64(2), suite.ctrl.BaseVersion())
}

func (suite *ControllerTestSuite) TestFlushFailureKeepsPending() {
	suite.Require().NoError(suite.ctrl.ApplyNodeChanges([]NodeChange{{Type: NodeChangeRemove, ID: "ai"}}))
	suite.store.On("Save", mock.Anything, "c1", "main", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), &flowstore.PersistenceError{Op: flowstore.OpSave, Err: errors.New("offline")}).Once()

	_, err := suite.ctrl.Flush(context.Background())
	suite.Error(err)
	suite.Equal([]string{"remove node ai"}, suite.ctrl.Pending())
	suite.Equal(int64(1), suite.ctrl.BaseVersion())
}

func (suite *ControllerTestSuite) TestFlushBeforeLoadFails() {
	ctrl := NewController(suite.store, "c1", "other", "user-1", flowstore.PolicyReject)
	_, err := ctrl.Flush(context.Background())
	suite.ErrorIs(err, ErrNotLoaded)
	suite.False(ctrl.View().Loaded)
}
