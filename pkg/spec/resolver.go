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

package spec

import (
	"fmt"

	"github.com/triton-sched/triton/pkg/task"
)

// ResolutionError indicates that a persisted task record cannot be mapped
// to a coherent task spec. This is a data-integrity violation, not a
// "spec has changed" condition: callers must abort the operation that hit
// it rather than persist state derived from the broken record.
type ResolutionError struct {
	TaskName string
	Reason   string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("task %q cannot be resolved to a spec: %s",
		e.TaskName, e.Reason)
}

// Resolver maps persisted task records back onto the service spec tree.
//
// Lookups that simply find nothing (the pod or task is no longer declared
// in the spec) return (nil, nil); errors are reserved for records that are
// internally inconsistent.
type Resolver interface {
	// ResolvePodInstance returns the pod instance a record belongs to,
	// or nil if the record's pod type is not declared in the spec.
	ResolvePodInstance(record *task.TaskRecord) (*PodInstance, error)
	// ResolveTaskSpec returns the task spec within the pod instance
	// matching the given pod-qualified task name, or nil if none does.
	ResolveTaskSpec(pod *PodInstance, taskName string) (*TaskSpec, error)
}

// resolver implements Resolver against a static service spec.
type resolver struct {
	serviceSpec *ServiceSpec
}

// NewResolver creates a Resolver backed by the given service spec.
func NewResolver(serviceSpec *ServiceSpec) Resolver {
	return &resolver{serviceSpec: serviceSpec}
}

func (r *resolver) ResolvePodInstance(record *task.TaskRecord) (*PodInstance, error) {
	if record.PodName == "" {
		return nil, &ResolutionError{
			TaskName: record.Name,
			Reason:   "record carries no pod name",
		}
	}
	podSpec := r.serviceSpec.GetPod(record.PodName)
	if podSpec == nil {
		return nil, nil
	}
	return &PodInstance{Pod: podSpec, Index: record.PodIndex}, nil
}

func (r *resolver) ResolveTaskSpec(pod *PodInstance, taskName string) (*TaskSpec, error) {
	for _, taskSpec := range pod.Pod.Tasks {
		if TaskInstanceName(pod, taskSpec) == taskName {
			return taskSpec, nil
		}
	}
	return nil, nil
}
