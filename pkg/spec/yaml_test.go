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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triton-sched/triton/pkg/task"
)

const _testServiceYAML = `
name: data
pods:
  web:
    count: 2
    resource-sets:
      shared:
        cpus: 1
        memory: 256
    tasks:
      server:
        goal: RUNNING
        resource-set: shared
      sidecar:
        goal: RUNNING
        resource-set: shared
      init:
        goal: ONCE
        cpus: 0.5
        memory: 64
`

func TestLoadServiceSpec(t *testing.T) {
	serviceSpec, err := Load([]byte(_testServiceYAML))
	assert.NoError(t, err)
	assert.Equal(t, "data", serviceSpec.Name)
	assert.Len(t, serviceSpec.Pods, 1)

	web := serviceSpec.GetPod("web")
	assert.NotNil(t, web)
	assert.Equal(t, uint32(2), web.Count)
	assert.Len(t, web.Tasks, 3)

	shared := web.GetResourceSet("shared")
	assert.NotNil(t, shared)
	assert.True(t, task.EqualResources([]*task.Resource{
		{Name: "cpus", Value: 1},
		{Name: "mem", Value: 256},
	}, shared.Resources))

	// Tasks are ordered by name for determinism.
	assert.Equal(t, "init", web.Tasks[0].Name)
	assert.Equal(t, "server", web.Tasks[1].Name)
	assert.Equal(t, "sidecar", web.Tasks[2].Name)

	assert.Equal(t, "shared", web.Tasks[1].ResourceSet)
	assert.Equal(t, GoalStateRunning, web.Tasks[1].Goal)

	// Inline resources imply a resource set named after the task.
	init := web.Tasks[0]
	assert.Equal(t, GoalStateOnce, init.Goal)
	assert.Equal(t, "init", init.ResourceSet)
	implicit := web.GetResourceSet("init")
	assert.NotNil(t, implicit)
	assert.True(t, task.EqualResources([]*task.Resource{
		{Name: "cpus", Value: 0.5},
		{Name: "mem", Value: 64},
	}, implicit.Resources))
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("name: [unterminated"))
	assert.Error(t, err)
}

func TestLoadRejectsMissingName(t *testing.T) {
	_, err := Load([]byte(`
pods:
  web:
    count: 1
    tasks:
      server:
        goal: RUNNING
        cpus: 1
`))
	assert.Error(t, err)
	_, ok := err.(ValidationError)
	assert.True(t, ok)
}

func TestLoadRejectsZeroPodCount(t *testing.T) {
	_, err := Load([]byte(`
name: data
pods:
  web:
    count: 0
    tasks:
      server:
        goal: RUNNING
        cpus: 1
`))
	assert.Error(t, err)
}

func TestLoadRejectsUndeclaredResourceSet(t *testing.T) {
	_, err := Load([]byte(`
name: data
pods:
  web:
    count: 1
    tasks:
      server:
        goal: RUNNING
        resource-set: missing
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "undeclared resource set")
}

func TestLoadRejectsUnknownGoalState(t *testing.T) {
	_, err := Load([]byte(`
name: data
pods:
  web:
    count: 1
    tasks:
      server:
        goal: SOMETIMES
        cpus: 1
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown goal state")
}

func TestLoadAccumulatesSemanticErrors(t *testing.T) {
	_, err := Load([]byte(`
name: data
pods:
  web:
    count: 1
    tasks:
      server:
        goal: SOMETIMES
        resource-set: missing
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown goal state")
	assert.Contains(t, err.Error(), "undeclared resource set")
}

func TestLoadRejectsImplicitSetCollision(t *testing.T) {
	_, err := Load([]byte(`
name: data
pods:
  web:
    count: 1
    resource-sets:
      server:
        cpus: 1
    tasks:
      server:
        goal: RUNNING
        cpus: 1
`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "implicit resource set collides")
}
