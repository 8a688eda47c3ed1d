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

// Package spec holds the read-only service specification tree consumed by
// the state-recording core: a service is a set of pod types, each pod type
// declares tasks and the resource sets those tasks draw from.
package spec

import (
	"fmt"

	"github.com/triton-sched/triton/pkg/task"
)

// GoalState is the desired terminal state of a task spec.
type GoalState int

const (
	// GoalStateUnknown is the zero value and fails validation.
	GoalStateUnknown GoalState = iota
	// GoalStateRunning means the task should run indefinitely.
	GoalStateRunning
	// GoalStateFinished means the task should run to completion and may
	// be relaunched on configuration change.
	GoalStateFinished
	// GoalStateOnce means the task should run to completion exactly once.
	GoalStateOnce
)

func (g GoalState) String() string {
	switch g {
	case GoalStateRunning:
		return "RUNNING"
	case GoalStateFinished:
		return "FINISHED"
	case GoalStateOnce:
		return "ONCE"
	default:
		return "UNKNOWN"
	}
}

// ServiceSpec is the root of the specification tree.
type ServiceSpec struct {
	Name string
	Pods []*PodSpec
}

// GetPod returns the pod spec with the given name, or nil.
func (s *ServiceSpec) GetPod(name string) *PodSpec {
	for _, p := range s.Pods {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PodSpec declares one pod type: how many instances exist and which tasks
// each instance runs.
type PodSpec struct {
	Name         string
	Count        uint32
	ResourceSets []*ResourceSetSpec
	Tasks        []*TaskSpec
}

// GetResourceSet returns the declared resource set with the given name,
// or nil.
func (p *PodSpec) GetResourceSet(name string) *ResourceSetSpec {
	for _, rs := range p.ResourceSets {
		if rs.Name == name {
			return rs
		}
	}
	return nil
}

// ResourceSetSpec is a named group of resources shared by all task specs in
// a pod that reference it. Resource sets are not persisted on their own;
// membership is derived from the spec tree.
type ResourceSetSpec struct {
	Name      string
	Resources []*task.Resource
}

// TaskSpec declares one task within a pod. Every task references exactly
// one resource set of its pod.
type TaskSpec struct {
	Name        string
	Goal        GoalState
	ResourceSet string
}

// PodInstance is a concrete, indexed instantiation of a pod spec.
type PodInstance struct {
	Pod   *PodSpec
	Index uint32
}

// Name returns the instance name, e.g. "web-0".
func (p *PodInstance) Name() string {
	return fmt.Sprintf("%s-%d", p.Pod.Name, p.Index)
}

// TaskInstanceName returns the pod-qualified name of a task within a pod
// instance, e.g. "web-0-server". This is the key task records are stored
// under.
func TaskInstanceName(pod *PodInstance, taskSpec *TaskSpec) string {
	return fmt.Sprintf("%s-%s", pod.Name(), taskSpec.Name)
}
