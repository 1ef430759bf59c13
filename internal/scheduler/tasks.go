package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskDistanceWarm = "geo.distance.warm"

type DistanceWarmPayload struct {
	ListingID string `json:"listingId"`
}

func NewDistanceWarmTask(payload DistanceWarmPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDistanceWarm, data), nil
}

func ParseDistanceWarmPayload(task *asynq.Task) (DistanceWarmPayload, error) {
	var payload DistanceWarmPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return DistanceWarmPayload{}, err
	}
	return payload, nil
}
