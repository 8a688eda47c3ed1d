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

package util

import (
	"strings"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
)

// Task ids embed the task instance name so that the name can be recovered
// from a bare id, e.g. "web-0-server__0f13ab...".
const _taskIDDelimiter = "__"

// BuildTaskID generates a new unique task id for the given task instance
// name.
func BuildTaskID(taskName string) string {
	return taskName + _taskIDDelimiter + uuid.New()
}

// ParseTaskID splits a task id into the task instance name and the unique
// suffix it was generated with.
func ParseTaskID(taskID string) (taskName string, id string, err error) {
	idx := strings.LastIndex(taskID, _taskIDDelimiter)
	if idx <= 0 || idx+len(_taskIDDelimiter) >= len(taskID) {
		return "", "", errors.Errorf(
			"invalid task id %q: expected <name>%s<uuid>",
			taskID, _taskIDDelimiter)
	}
	return taskID[:idx], taskID[idx+len(_taskIDDelimiter):], nil
}
