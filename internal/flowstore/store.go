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

package flowstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/socar-georgia/finsight/internal/flowgraph"
	dbmodel "github.com/socar-georgia/finsight/internal/system/database/model"
	"github.com/socar-georgia/finsight/internal/system/database/provider"
	"github.com/socar-georgia/finsight/internal/system/log"
)

const storeLoggerComponentName = "FlowDocumentStore"

// documentStoreInterface reads and writes flow documents.
type documentStoreInterface interface {
	GetFlow(ctx context.Context, companyID, flowID string) (*flowgraph.Flow, error)
	// SaveFlow writes the flow at version expected+1 and reports whether expected was stale.
	SaveFlow(ctx context.Context, flow flowgraph.Flow, expected int64, rejectStale bool) (int64, bool, error)
}

// documentStore is the SQL implementation of documentStoreInterface.
type documentStore struct {
	dbProvider provider.DBProviderInterface
}

// newDocumentStore creates a new instance of documentStore.
func newDocumentStore() documentStoreInterface {
	return &documentStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetFlow retrieves a flow document. It returns ErrFlowNotFound when none exists.
func (s *documentStore) GetFlow(ctx context.Context, companyID, flowID string) (*flowgraph.Flow, error) {
	dbClient, err := s.dbProvider.GetDBClient(provider.FlowDB)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, QueryGetFlow, companyID, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrFlowNotFound
	}
	if len(results) > 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildFlowFromResultRow(results[0])
}

// SaveFlow writes the flow document inside a transaction.
func (s *documentStore) SaveFlow(ctx context.Context, flow flowgraph.Flow, expected int64,
	rejectStale bool) (int64, bool, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	nodesJSON, err := json.Marshal(nonNilNodes(flow.Nodes))
	if err != nil {
		return 0, false, fmt.Errorf("failed to marshal nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(nonNilEdges(flow.Edges))
	if err != nil {
		return 0, false, fmt.Errorf("failed to marshal edges: %w", err)
	}

	dbClient, err := s.dbProvider.GetDBClient(provider.FlowDB)
	if err != nil {
		return 0, false, fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	rows, err := tx.Query(QueryGetFlowVersion, flow.CompanyID, flow.FlowID)
	if err != nil {
		return 0, false, rollback(tx, fmt.Errorf("failed to read flow version: %w", err))
	}

	var current int64
	exists := len(rows) > 0
	if exists {
		if current, err = dbmodel.GetInt64(rows[0], "version"); err != nil {
			return 0, false, rollback(tx, fmt.Errorf("failed to parse flow version: %w", err))
		}
	}

	stale := expected != current
	if stale && rejectStale {
		return 0, true, rollback(tx, ErrVersionConflict)
	}

	next := current + 1
	updatedAt := flow.UpdatedAt.UTC().Format(time.RFC3339Nano)
	if !exists {
		_, err = tx.Exec(QueryInsertFlow, flow.CompanyID, flow.FlowID, next, string(nodesJSON),
			string(edgesJSON), updatedAt, flow.UpdatedBy)
		if err != nil {
			return 0, stale, rollback(tx, fmt.Errorf("failed to insert flow: %w", err))
		}
	} else {
		res, err := tx.Exec(QueryUpdateFlow, next, string(nodesJSON), string(edgesJSON), updatedAt,
			flow.UpdatedBy, flow.CompanyID, flow.FlowID, current)
		if err != nil {
			return 0, stale, rollback(tx, fmt.Errorf("failed to update flow: %w", err))
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			logger.Debug("Flow changed between version read and update",
				log.String(log.LoggerKeyCompanyID, flow.CompanyID), log.String(log.LoggerKeyFlowID, flow.FlowID))
			if rejectStale {
				return 0, true, rollback(tx, ErrVersionConflict)
			}
			if next, err = overwriteFlow(tx, flow, string(nodesJSON), string(edgesJSON), updatedAt); err != nil {
				return 0, true, rollback(tx, err)
			}
			stale = true
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, stale, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return next, stale, nil
}

// overwriteFlow replaces the document whatever its version and returns the version it now holds.
func overwriteFlow(tx dbmodel.TxInterface, flow flowgraph.Flow, nodesJSON, edgesJSON, updatedAt string) (
	int64, error) {
	if _, err := tx.Exec(QueryOverwriteFlow, nodesJSON, edgesJSON, updatedAt, flow.UpdatedBy,
		flow.CompanyID, flow.FlowID); err != nil {
		return 0, fmt.Errorf("failed to overwrite flow: %w", err)
	}
	rows, err := tx.Query(QueryGetFlowVersion, flow.CompanyID, flow.FlowID)
	if err != nil {
		return 0, fmt.Errorf("failed to read flow version: %w", err)
	}
	if len(rows) == 0 {
		return 0, ErrFlowNotFound
	}
	version, err := dbmodel.GetInt64(rows[0], "version")
	if err != nil {
		return 0, fmt.Errorf("failed to parse flow version: %w", err)
	}
	return version, nil
}

func rollback(tx dbmodel.TxInterface, cause error) error {
	if err := tx.Rollback(); err != nil {
		return errors.Join(cause, fmt.Errorf("failed to rollback transaction: %w", err))
	}
	return cause
}

// buildFlowFromResultRow constructs a flow from a database result row.
func buildFlowFromResultRow(row map[string]interface{}) (*flowgraph.Flow, error) {
	version, err := dbmodel.GetInt64(row, "version")
	if err != nil {
		return nil, fmt.Errorf("failed to parse version: %w", err)
	}
	updatedAt, err := dbmodel.GetTime(row, "updated_at")
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	flow := &flowgraph.Flow{
		CompanyID: dbmodel.GetString(row, "company_id"),
		FlowID:    dbmodel.GetString(row, "flow_id"),
		Version:   version,
		UpdatedAt: updatedAt,
		UpdatedBy: dbmodel.GetString(row, "updated_by"),
	}
	if nodes := dbmodel.GetString(row, "nodes"); nodes != "" {
		if err := json.Unmarshal([]byte(nodes), &flow.Nodes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal nodes: %w", err)
		}
	}
	if edges := dbmodel.GetString(row, "edges"); edges != "" {
		if err := json.Unmarshal([]byte(edges), &flow.Edges); err != nil {
			return nil, fmt.Errorf("failed to unmarshal edges: %w", err)
		}
	}
	return flow, nil
}

func nonNilNodes(nodes []flowgraph.Node) []flowgraph.Node {
	if nodes == nil {
		return []flowgraph.Node{}
	}
	return nodes
}

func nonNilEdges(edges []flowgraph.Edge) []flowgraph.Edge {
	if edges == nil {
		return []flowgraph.Edge{}
	}
	return edges
}
