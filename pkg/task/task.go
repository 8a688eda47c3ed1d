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

package task

import (
	"fmt"
	"strings"
)

// TaskState is the lifecycle state of a task as recorded in the state store.
type TaskState int

const (
	// TaskStateUnknown is the zero value and never stored explicitly.
	TaskStateUnknown TaskState = iota
	// TaskStateStaging is recorded once a task id has been assigned but
	// before the cluster confirms the task is running.
	TaskStateStaging
	// TaskStateStarting means the executor acknowledged the launch.
	TaskStateStarting
	// TaskStateRunning means the task is running.
	TaskStateRunning
	// TaskStateFinished means the task terminated successfully.
	TaskStateFinished
	// TaskStateFailed means the task terminated with an error.
	TaskStateFailed
	// TaskStateKilled means the task was killed on request.
	TaskStateKilled
	// TaskStateLost means the task was lost by the cluster.
	TaskStateLost
)

func (s TaskState) String() string {
	switch s {
	case TaskStateStaging:
		return "STAGING"
	case TaskStateStarting:
		return "STARTING"
	case TaskStateRunning:
		return "RUNNING"
	case TaskStateFinished:
		return "FINISHED"
	case TaskStateFailed:
		return "FAILED"
	case TaskStateKilled:
		return "KILLED"
	case TaskStateLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Resource is a named scalar resource assignment, e.g. cpus:1.5.
type Resource struct {
	Name  string
	Value float64
}

func (r *Resource) String() string {
	return fmt.Sprintf("%s:%v", r.Name, r.Value)
}

// CloneResources returns a deep copy of the given resource list.
func CloneResources(resources []*Resource) []*Resource {
	if resources == nil {
		return nil
	}
	cloned := make([]*Resource, 0, len(resources))
	for _, r := range resources {
		tmp := *r
		cloned = append(cloned, &tmp)
	}
	return cloned
}

// EqualResources compares two resource lists by name and value, in order.
func EqualResources(a, b []*Resource) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Value != b[i].Value {
			return false
		}
	}
	return true
}

// FormatResources renders a resource list as [cpus:1 mem:256].
func FormatResources(resources []*Resource) string {
	parts := make([]string, 0, len(resources))
	for _, r := range resources {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// TaskRecord is the persisted record of a launched task. Records are keyed
// by the pod-qualified instance name (e.g. "web-0-server") and are mutated
// in place by resource-set propagation; they are never deleted by this
// package.
type TaskRecord struct {
	// Name is the pod-qualified task instance name.
	Name string
	// TaskID is the assigned task id. Empty until the task has been bound
	// to a concrete offer.
	TaskID string
	// ExecutorID identifies the executor the task was assigned to, if any.
	ExecutorID string
	// PodName is the pod type this task instance belongs to.
	PodName string
	// PodIndex is the index of the pod instance.
	PodIndex uint32
	// ResourceSet names the resource set declared for this task in the
	// service spec. All tasks in one pod instance sharing a resource set
	// hold identical resource lists at any quiescent moment.
	ResourceSet string
	// Resources currently assigned to the resource set this task is in.
	Resources []*Resource
	// InitialLaunch is set on the first launch of the task and is never
	// cleared by a relaunch.
	InitialLaunch bool
}

// Clone returns a deep copy of the record.
func (t *TaskRecord) Clone() *TaskRecord {
	cloned := *t
	cloned.Resources = CloneResources(t.Resources)
	return &cloned
}

// StatusRecord is a task status entry as written to the state store.
type StatusRecord struct {
	TaskID     string
	State      TaskState
	ExecutorID string
}
