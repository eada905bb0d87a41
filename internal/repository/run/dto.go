package run

import (
	"github.com/kailas-cloud/runstore/internal/db"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
)

func toRecord(r *domrun.Run) *db.RunRecord {
	return &db.RunRecord{
		ID:              r.ID(),
		ProjectID:       r.ProjectID(),
		ExperimentID:    r.ExperimentID(),
		Name:            r.Name(),
		Description:     r.Description(),
		Owner:           r.Owner(),
		CodeVersion:     r.CodeVersion(),
		DateCreated:     r.DateCreated(),
		DateUpdated:     r.DateUpdated(),
		StartTime:       r.StartTime(),
		EndTime:         r.EndTime(),
		Attributes:      r.Attributes(),
		Metrics:         r.Metrics(),
		Hyperparameters: r.Hyperparameters(),
	}
}

func fromRecord(rec *db.RunRecord) domrun.Run {
	return domrun.Reconstruct(domrun.Params{
		ID:              rec.ID,
		ProjectID:       rec.ProjectID,
		ExperimentID:    rec.ExperimentID,
		Name:            rec.Name,
		Description:     rec.Description,
		Owner:           rec.Owner,
		CodeVersion:     rec.CodeVersion,
		StartTime:       rec.StartTime,
		EndTime:         rec.EndTime,
		Attributes:      rec.Attributes,
		Metrics:         rec.Metrics,
		Hyperparameters: rec.Hyperparameters,
	}, rec.DateCreated, rec.DateUpdated)
}
