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
	"bytes"
	"fmt"
	"io/ioutil"
	"sort"

	"go.uber.org/multierr"
	"gopkg.in/validator.v2"
	"gopkg.in/yaml.v2"

	"github.com/pkg/errors"

	"github.com/triton-sched/triton/pkg/task"
)

// rawServiceSpec is the YAML shape of a service definition.
type rawServiceSpec struct {
	Name string            `yaml:"name" validate:"nonzero"`
	Pods map[string]rawPod `yaml:"pods" validate:"min=1"`
}

type rawPod struct {
	Count        uint32                    `yaml:"count" validate:"min=1"`
	ResourceSets map[string]rawResourceSet `yaml:"resource-sets"`
	Tasks        map[string]rawTask        `yaml:"tasks" validate:"min=1"`
}

type rawResourceSet struct {
	Cpus   float64 `yaml:"cpus"`
	Memory float64 `yaml:"memory"`
	Disk   float64 `yaml:"disk"`
}

type rawTask struct {
	Goal string `yaml:"goal" validate:"nonzero"`
	// A task either references a resource set declared by its pod, or
	// declares resources inline, which implies a single-member resource
	// set named after the task.
	ResourceSet string  `yaml:"resource-set"`
	Cpus        float64 `yaml:"cpus"`
	Memory      float64 `yaml:"memory"`
	Disk        float64 `yaml:"disk"`
}

// ValidationError is returned when a service definition fails structural
// validation.
type ValidationError struct {
	errorMap validator.ErrorMap
}

// ErrForField returns the validation error for the given field.
func (e ValidationError) ErrForField(name string) error {
	return e.errorMap[name]
}

func (e ValidationError) Error() string {
	var w bytes.Buffer
	fmt.Fprintf(&w, "service definition validation failed")
	for f, err := range e.errorMap {
		fmt.Fprintf(&w, "   %s: %v\n", f, err)
	}
	return w.String()
}

// LoadFile reads and parses a service definition YAML file.
func LoadFile(fname string) (*ServiceSpec, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Load parses a service definition from YAML and builds the spec tree.
func Load(data []byte) (*ServiceSpec, error) {
	raw := &rawServiceSpec{}
	if err := yaml.Unmarshal(data, raw); err != nil {
		return nil, errors.Wrap(err, "failed to parse service definition")
	}
	if err := validator.Validate(raw); err != nil {
		return nil, ValidationError{errorMap: err.(validator.ErrorMap)}
	}

	serviceSpec := &ServiceSpec{Name: raw.Name}
	var verr error
	for _, podName := range sortedKeys(raw.Pods) {
		podSpec, err := buildPodSpec(podName, raw.Pods[podName])
		verr = multierr.Append(verr, err)
		if podSpec != nil {
			serviceSpec.Pods = append(serviceSpec.Pods, podSpec)
		}
	}
	if verr != nil {
		return nil, verr
	}
	return serviceSpec, nil
}

func buildPodSpec(name string, raw rawPod) (*PodSpec, error) {
	podSpec := &PodSpec{Name: name, Count: raw.Count}

	var verr error
	if raw.Count == 0 {
		verr = multierr.Append(verr, errors.Errorf(
			"pod %q: count must be at least 1", name))
	}
	if len(raw.Tasks) == 0 {
		verr = multierr.Append(verr, errors.Errorf(
			"pod %q: declares no tasks", name))
	}
	setNames := make([]string, 0, len(raw.ResourceSets))
	for n := range raw.ResourceSets {
		setNames = append(setNames, n)
	}
	sort.Strings(setNames)
	for _, setName := range setNames {
		rawSet := raw.ResourceSets[setName]
		podSpec.ResourceSets = append(podSpec.ResourceSets, &ResourceSetSpec{
			Name:      setName,
			Resources: buildResources(rawSet.Cpus, rawSet.Memory, rawSet.Disk),
		})
	}

	taskNames := make([]string, 0, len(raw.Tasks))
	for n := range raw.Tasks {
		taskNames = append(taskNames, n)
	}
	sort.Strings(taskNames)
	for _, taskName := range taskNames {
		rawTask := raw.Tasks[taskName]
		taskSpec := &TaskSpec{Name: taskName}

		switch rawTask.Goal {
		case "RUNNING":
			taskSpec.Goal = GoalStateRunning
		case "FINISHED":
			taskSpec.Goal = GoalStateFinished
		case "ONCE":
			taskSpec.Goal = GoalStateOnce
		default:
			verr = multierr.Append(verr, errors.Errorf(
				"pod %q task %q: unknown goal state %q",
				name, taskName, rawTask.Goal))
		}

		if rawTask.ResourceSet != "" {
			if podSpec.GetResourceSet(rawTask.ResourceSet) == nil {
				verr = multierr.Append(verr, errors.Errorf(
					"pod %q task %q references undeclared resource set %q",
					name, taskName, rawTask.ResourceSet))
			}
			taskSpec.ResourceSet = rawTask.ResourceSet
		} else {
			// Inline resources imply a single-member resource set
			// named after the task.
			if podSpec.GetResourceSet(taskName) != nil {
				verr = multierr.Append(verr, errors.Errorf(
					"pod %q task %q: implicit resource set collides with declared set",
					name, taskName))
			} else {
				podSpec.ResourceSets = append(podSpec.ResourceSets, &ResourceSetSpec{
					Name: taskName,
					Resources: buildResources(
						rawTask.Cpus, rawTask.Memory, rawTask.Disk),
				})
			}
			taskSpec.ResourceSet = taskName
		}

		podSpec.Tasks = append(podSpec.Tasks, taskSpec)
	}
	if verr != nil {
		return nil, verr
	}
	return podSpec, nil
}

func buildResources(cpus, memory, disk float64) []*task.Resource {
	var resources []*task.Resource
	if cpus > 0 {
		resources = append(resources, &task.Resource{Name: "cpus", Value: cpus})
	}
	if memory > 0 {
		resources = append(resources, &task.Resource{Name: "mem", Value: memory})
	}
	if disk > 0 {
		resources = append(resources, &task.Resource{Name: "disk", Value: disk})
	}
	return resources
}

// sortedKeys gives deterministic pod ordering regardless of YAML map
// iteration order.
func sortedKeys(pods map[string]rawPod) []string {
	keys := make([]string, 0, len(pods))
	for k := range pods {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
