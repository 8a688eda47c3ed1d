// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package stores provides StateStore implementations that do not depend on
// an external storage engine.
package stores

import (
	"context"
	"sync"

	"github.com/triton-sched/triton/pkg/storage"
	"github.com/triton-sched/triton/pkg/task"
)

// MemStore is a map-backed StateStore for tests and local runs. Records
// are deep-copied on the way in and out so callers cannot alias store
// state.
type MemStore struct {
	sync.RWMutex
	tasks    map[string]*task.TaskRecord
	statuses map[string]*task.StatusRecord
}

// NewMemStore creates an empty in-memory state store.
func NewMemStore() *MemStore {
	return &MemStore{
		tasks:    make(map[string]*task.TaskRecord),
		statuses: make(map[string]*task.StatusRecord),
	}
}

// FetchTask implements storage.StateStore.
func (s *MemStore) FetchTask(ctx context.Context, taskName string) (*task.TaskRecord, error) {
	s.RLock()
	defer s.RUnlock()
	record, ok := s.tasks[taskName]
	if !ok {
		return nil, &storage.TaskNotFoundError{TaskName: taskName}
	}
	return record.Clone(), nil
}

// StoreTasks implements storage.StateStore.
func (s *MemStore) StoreTasks(ctx context.Context, records []*task.TaskRecord) error {
	s.Lock()
	defer s.Unlock()
	for _, record := range records {
		s.tasks[record.Name] = record.Clone()
	}
	return nil
}

// StoreStatus implements storage.StateStore.
func (s *MemStore) StoreStatus(ctx context.Context, status *task.StatusRecord) error {
	s.Lock()
	defer s.Unlock()
	tmp := *status
	s.statuses[status.TaskID] = &tmp
	return nil
}

// FetchStatus returns the status stored under the given task id, or nil.
func (s *MemStore) FetchStatus(taskID string) *task.StatusRecord {
	s.RLock()
	defer s.RUnlock()
	status, ok := s.statuses[taskID]
	if !ok {
		return nil
	}
	tmp := *status
	return &tmp
}

// TaskCount returns the number of stored task records.
func (s *MemStore) TaskCount() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.tasks)
}
