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

package state

import (
	"fmt"

	"github.com/triton-sched/triton/pkg/task"
)

// LaunchType classifies a launch against the prior state of the task.
type LaunchType int

const (
	// LaunchTypeUnknown means the prior state cannot be classified. This
	// is an invariant violation, never a recoverable condition.
	LaunchTypeUnknown LaunchType = iota
	// LaunchTypeInitial is the first launch of a task.
	LaunchTypeInitial
	// LaunchTypeRelaunch is a launch of a previously recorded task.
	LaunchTypeRelaunch
)

func (t LaunchType) String() string {
	switch t {
	case LaunchTypeInitial:
		return "initial launch"
	case LaunchTypeRelaunch:
		return "relaunch"
	default:
		return "unknown launch"
	}
}

// InvariantViolationError indicates that a task's prior state cannot be
// mapped to any launch type: a record exists but was never stamped as
// launched. It is fatal for the record operation that hit it.
type InvariantViolationError struct {
	TaskName string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf(
		"task %q has a prior record with no launch marker: unsupported launch type",
		e.TaskName)
}

// getLaunchType classifies a launch given the prior record for the task
// name, or nil if none exists. A prior record always carries the
// initial-launch marker; one without it was written by something other
// than this recorder.
func getLaunchType(prior *task.TaskRecord) LaunchType {
	if prior == nil {
		return LaunchTypeInitial
	}
	if prior.InitialLaunch {
		return LaunchTypeRelaunch
	}
	return LaunchTypeUnknown
}
