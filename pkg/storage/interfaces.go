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

package storage

import (
	"context"
	"fmt"

	"github.com/triton-sched/triton/pkg/task"
)

// TaskNotFoundError indicates that no task record exists under the given
// name. Callers distinguish it from store I/O failures with IsTaskNotFound.
type TaskNotFoundError struct {
	TaskName string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %v is not found", e.TaskName)
}

// IsTaskNotFound returns whether the error is a TaskNotFoundError.
func IsTaskNotFound(err error) bool {
	_, ok := err.(*TaskNotFoundError)
	return ok
}

// StateStore is the interface to the persistent store holding task records
// and task statuses. Implementations may block on I/O; they offer no
// multi-key transaction, so callers order their writes to minimize
// inconsistency windows.
type StateStore interface {
	// FetchTask returns the record stored under the given task instance
	// name, or a TaskNotFoundError if none exists.
	FetchTask(ctx context.Context, taskName string) (*task.TaskRecord, error)
	// StoreTasks writes the given records in one batch, overwriting any
	// records already stored under the same names.
	StoreTasks(ctx context.Context, records []*task.TaskRecord) error
	// StoreStatus writes the given status record, overwriting any status
	// already stored under the same task id.
	StoreStatus(ctx context.Context, status *task.StatusRecord) error
}
