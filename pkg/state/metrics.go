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
	"github.com/uber-go/tally"
)

// Metrics is the struct containing all the counters that track internal
// state of the launch recorder.
type Metrics struct {
	RecordLaunch     tally.Counter
	RecordLaunchFail tally.Counter

	InitialLaunch tally.Counter
	Relaunch      tally.Counter

	// RecommendationSkipped counts non-launch recommendations handed to
	// the recorder.
	RecommendationSkipped tally.Counter

	// ResourceSetTasksUpdated counts sibling task records rewritten by
	// resource-set propagation.
	ResourceSetTasksUpdated tally.Counter

	RecordCallDuration tally.Timer
}

// NewMetrics returns a new Metrics struct, with all metrics initialized
// and rooted at the given tally.Scope
func NewMetrics(scope tally.Scope) *Metrics {
	recordSuccessScope := scope.Tagged(map[string]string{"result": "success"})
	recordFailScope := scope.Tagged(map[string]string{"result": "fail"})
	launchTypeScope := scope.SubScope("launch_type")
	resourceSetScope := scope.SubScope("resource_set")

	return &Metrics{
		RecordLaunch:     recordSuccessScope.Counter("record"),
		RecordLaunchFail: recordFailScope.Counter("record"),

		InitialLaunch: launchTypeScope.Counter("initial"),
		Relaunch:      launchTypeScope.Counter("relaunch"),

		RecommendationSkipped: scope.Counter("recommendation_skipped"),

		ResourceSetTasksUpdated: resourceSetScope.Counter("tasks_updated"),

		RecordCallDuration: scope.Timer("record_call_duration"),
	}
}
