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

// Package offer holds the values the offer-matching pipeline hands to
// downstream recorders once a placement decision has been made.
package offer

import (
	"context"

	"github.com/triton-sched/triton/pkg/task"
)

// RecommendationKind tags the operation an accepted recommendation asks
// the cluster to perform.
type RecommendationKind int

const (
	// KindLaunch launches a task on the accepted offer.
	KindLaunch RecommendationKind = iota
	// KindReserve reserves resources from the offer.
	KindReserve
	// KindUnreserve releases a prior reservation.
	KindUnreserve
	// KindCreate creates a persistent volume.
	KindCreate
	// KindDestroy destroys a persistent volume.
	KindDestroy
)

func (k RecommendationKind) String() string {
	switch k {
	case KindLaunch:
		return "LAUNCH"
	case KindReserve:
		return "RESERVE"
	case KindUnreserve:
		return "UNRESERVE"
	case KindCreate:
		return "CREATE"
	case KindDestroy:
		return "DESTROY"
	default:
		return "UNKNOWN"
	}
}

// LaunchRecommendation is the launch variant payload: the candidate task
// record to persist. The record's TaskID is empty when the recommendation
// is a placeholder without a concrete offer binding.
type LaunchRecommendation struct {
	Task *task.TaskRecord
}

// Recommendation is the outcome of an offer-matching decision. Launch is
// populated only when Kind is KindLaunch; recommendations are ephemeral
// and never persisted themselves.
type Recommendation struct {
	Kind   RecommendationKind
	Launch *LaunchRecommendation
}

// NewLaunchRecommendation wraps a candidate task record in a launch
// recommendation.
func NewLaunchRecommendation(record *task.TaskRecord) *Recommendation {
	return &Recommendation{
		Kind:   KindLaunch,
		Launch: &LaunchRecommendation{Task: record},
	}
}

// OperationRecorder persists the effects of accepted recommendations.
// Implementations handle the kinds they care about and ignore the rest.
type OperationRecorder interface {
	Record(ctx context.Context, recommendation *Recommendation) error
}
