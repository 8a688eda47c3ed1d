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

// Package state records the results of accepted launch recommendations to
// persistent storage and keeps the resource assignments of tasks sharing a
// resource set consistent in the store.
package state

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"

	"github.com/triton-sched/triton/pkg/offer"
	"github.com/triton-sched/triton/pkg/spec"
	"github.com/triton-sched/triton/pkg/storage"
	"github.com/triton-sched/triton/pkg/task"
)

// LaunchRecorder persists the outcome of launch recommendations. It
// implements offer.OperationRecorder; recommendation kinds other than
// launch are ignored.
type LaunchRecorder struct {
	store    storage.StateStore
	resolver spec.Resolver
	metrics  *Metrics
}

// NewLaunchRecorder creates a LaunchRecorder writing through the given
// state store and resolving records against the given spec resolver.
func NewLaunchRecorder(
	store storage.StateStore,
	resolver spec.Resolver,
	parent tally.Scope,
) *LaunchRecorder {
	return &LaunchRecorder{
		store:    store,
		resolver: resolver,
		metrics:  NewMetrics(parent.SubScope("state").SubScope("recorder")),
	}
}

// Record persists the effects of an accepted recommendation.
//
// Writes are ordered sibling resource updates, then primary task record,
// then staging status. The store offers no multi-key transaction: a crash
// between the sibling batch and the primary write leaves siblings carrying
// resources the primary never recorded, a window an external
// reconciliation pass repairs. Two concurrent launches within one resource
// set are last-write-wins in the store; the offer pipeline serializes
// launch decisions per pod instance at a higher layer.
//
// A failed Record leaves no primary write behind and is safe to retry
// with the same recommendation.
func (r *LaunchRecorder) Record(
	ctx context.Context,
	recommendation *offer.Recommendation,
) error {
	if recommendation.Kind != offer.KindLaunch {
		r.metrics.RecommendationSkipped.Inc(1)
		log.WithField("kind", recommendation.Kind.String()).
			Debug("skipping non-launch recommendation")
		return nil
	}

	callStart := time.Now()
	err := r.recordLaunch(ctx, recommendation.Launch.Task)
	r.metrics.RecordCallDuration.Record(time.Since(callStart))
	if err != nil {
		r.metrics.RecordLaunchFail.Inc(1)
		return err
	}
	r.metrics.RecordLaunch.Inc(1)
	return nil
}

func (r *LaunchRecorder) recordLaunch(
	ctx context.Context,
	candidate *task.TaskRecord,
) error {
	// The caller's record is never mutated.
	record := candidate.Clone()

	prior, err := r.store.FetchTask(ctx, record.Name)
	if err != nil && !storage.IsTaskNotFound(err) {
		return err
	}

	launchType := getLaunchType(prior)
	switch launchType {
	case LaunchTypeInitial:
		record.InitialLaunch = true
		r.metrics.InitialLaunch.Inc(1)
	case LaunchTypeRelaunch:
		// The candidate arrives unstamped; the marker, once set, is
		// never cleared by a relaunch.
		record.InitialLaunch = true
		r.metrics.Relaunch.Inc(1)
	case LaunchTypeUnknown:
		return &InvariantViolationError{TaskName: record.Name}
	}

	var status *task.StatusRecord
	if record.TaskID != "" {
		status = &task.StatusRecord{
			TaskID:     record.TaskID,
			State:      task.TaskStateStaging,
			ExecutorID: record.ExecutorID,
		}
	}

	log.WithFields(log.Fields{
		"task_name":   record.Name,
		"task_id":     record.TaskID,
		"launch_type": launchType.String(),
		"with_status": status != nil,
		"resources":   task.FormatResources(record.Resources),
	}).Info("persisting launch operation")

	updated, err := r.updateResourcesWithinResourceSet(ctx, record)
	if err != nil {
		return err
	}
	r.metrics.ResourceSetTasksUpdated.Inc(int64(updated))

	if err := r.store.StoreTasks(ctx, []*task.TaskRecord{record}); err != nil {
		return err
	}
	if status != nil {
		if err := r.store.StoreStatus(ctx, status); err != nil {
			return err
		}
	}
	return nil
}

// updateResourcesWithinResourceSet keeps the resources of tasks sharing
// the source task's resource set up to date in the store. A source record
// that resolves to no pod or task spec is a no-op; a record that cannot
// be resolved coherently fails the whole operation. Returns the number of
// sibling records rewritten.
func (r *LaunchRecorder) updateResourcesWithinResourceSet(
	ctx context.Context,
	source *task.TaskRecord,
) (int, error) {
	podInstance, err := r.resolver.ResolvePodInstance(source)
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve pod instance for launched task")
	}
	if podInstance == nil {
		return 0, nil
	}

	sourceSpec, err := r.resolver.ResolveTaskSpec(podInstance, source.Name)
	if err != nil {
		return 0, errors.Wrap(err, "failed to resolve task spec for launched task")
	}
	if sourceSpec == nil {
		return 0, nil
	}

	siblingNames := otherTasksInResourceSet(podInstance, sourceSpec)
	log.WithFields(log.Fields{
		"task_name":    source.Name,
		"resource_set": sourceSpec.ResourceSet,
		"siblings":     siblingNames,
	}).Debug("updating resources for resource set")

	var siblings []*task.TaskRecord
	for _, name := range siblingNames {
		sibling, err := r.store.FetchTask(ctx, name)
		if err != nil {
			// A sibling that has never launched has nothing to update.
			if storage.IsTaskNotFound(err) {
				continue
			}
			return 0, err
		}
		siblings = append(siblings, sibling)
	}
	if len(siblings) == 0 {
		return 0, nil
	}

	updated := updateRecordsWithResources(siblings, source.Resources)
	if err := r.store.StoreTasks(ctx, updated); err != nil {
		return 0, err
	}
	return len(updated), nil
}

// otherTasksInResourceSet returns the instance names of the tasks in the
// pod instance sharing the source task's resource set, excluding the
// source task itself.
func otherTasksInResourceSet(
	podInstance *spec.PodInstance,
	sourceSpec *spec.TaskSpec,
) []string {
	var names []string
	for _, taskSpec := range podInstance.Pod.Tasks {
		if taskSpec.Name == sourceSpec.Name {
			continue
		}
		if taskSpec.ResourceSet != sourceSpec.ResourceSet {
			continue
		}
		names = append(names, spec.TaskInstanceName(podInstance, taskSpec))
	}
	return names
}

// updateRecordsWithResources returns copies of the given records with
// their resource lists replaced wholesale by the given resources. The
// lists are replaced rather than merged: a merge could leave a record
// holding resources from two different offer cycles at once.
func updateRecordsWithResources(
	records []*task.TaskRecord,
	resources []*task.Resource,
) []*task.TaskRecord {
	updated := make([]*task.TaskRecord, 0, len(records))
	for _, record := range records {
		tmp := record.Clone()
		tmp.Resources = task.CloneResources(resources)
		updated = append(updated, tmp)
	}
	return updated
}
