package tasks

import (
	"encoding/json"

	"pawtrack/models"

	"github.com/hibiken/asynq"
)

const TypeGenerateSummary = "summary:generate"

func NewSummaryTask(req models.SummaryRequest) (*asynq.Task, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGenerateSummary, b), nil
}
