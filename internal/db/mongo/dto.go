package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Collection names.
const (
	collProjects    = "projects"
	collExperiments = "experiments"
	collRuns        = "experiment_runs"
)

type projectDoc struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Owner       string `bson:"owner"`
	DateCreated int64  `bson:"date_created"`
	DateUpdated int64  `bson:"date_updated"`
}

type experimentDoc struct {
	ID          string `bson:"_id"`
	ProjectID   string `bson:"project_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Owner       string `bson:"owner"`
	DateCreated int64  `bson:"date_created"`
	DateUpdated int64  `bson:"date_updated"`
}

// keyValueDoc stores the value kind next to the value so filters can
// select same-kind entries without relying on BSON type ordering.
type keyValueDoc struct {
	Key   string `bson:"key"`
	Kind  string `bson:"kind"`
	Value any    `bson:"value"`
}

type runDoc struct {
	ID              string        `bson:"_id"`
	ProjectID       string        `bson:"project_id"`
	ExperimentID    string        `bson:"experiment_id"`
	Name            string        `bson:"name"`
	Description     string        `bson:"description"`
	Owner           string        `bson:"owner"`
	CodeVersion     string        `bson:"code_version"`
	DateCreated     int64         `bson:"date_created"`
	DateUpdated     int64         `bson:"date_updated"`
	StartTime       *int64        `bson:"start_time,omitempty"`
	EndTime         *int64        `bson:"end_time,omitempty"`
	Attributes      []keyValueDoc `bson:"attributes"`
	Metrics         []keyValueDoc `bson:"metrics"`
	Hyperparameters []keyValueDoc `bson:"hyperparameters"`
}

// Document field names of run scalars, keyed by field path name.
var scalarFields = map[string]string{
	"id":           "_id",
	"projectId":    "project_id",
	"experimentId": "experiment_id",
	"name":         "name",
	"description":  "description",
	"owner":        "owner",
	"codeVersion":  "code_version",
	"dateCreated":  "date_created",
	"dateUpdated":  "date_updated",
	"startTime":    "start_time",
	"endTime":      "end_time",
}

func toProjectDoc(r *db.ProjectRecord) projectDoc {
	return projectDoc{
		ID: r.ID, Name: r.Name, Description: r.Description, Owner: r.Owner,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
	}
}

func (d *projectDoc) record() *db.ProjectRecord {
	return &db.ProjectRecord{
		ID: d.ID, Name: d.Name, Description: d.Description, Owner: d.Owner,
		DateCreated: d.DateCreated, DateUpdated: d.DateUpdated,
	}
}

func toExperimentDoc(r *db.ExperimentRecord) experimentDoc {
	return experimentDoc{
		ID: r.ID, ProjectID: r.ProjectID, Name: r.Name, Description: r.Description, Owner: r.Owner,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
	}
}

func (d *experimentDoc) record() *db.ExperimentRecord {
	return &db.ExperimentRecord{
		ID: d.ID, ProjectID: d.ProjectID, Name: d.Name, Description: d.Description, Owner: d.Owner,
		DateCreated: d.DateCreated, DateUpdated: d.DateUpdated,
	}
}

func toRunDoc(r *db.RunRecord) runDoc {
	return runDoc{
		ID: r.ID, ProjectID: r.ProjectID, ExperimentID: r.ExperimentID,
		Name: r.Name, Description: r.Description, Owner: r.Owner, CodeVersion: r.CodeVersion,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
		StartTime: r.StartTime, EndTime: r.EndTime,
		Attributes:      toKeyValueDocs(r.Attributes),
		Metrics:         toKeyValueDocs(r.Metrics),
		Hyperparameters: toKeyValueDocs(r.Hyperparameters),
	}
}

func (d *runDoc) record() (*db.RunRecord, error) {
	attrs, err := fromKeyValueDocs(d.Attributes)
	if err != nil {
		return nil, fmt.Errorf("run %q attributes: %w", d.ID, err)
	}
	metrics, err := fromKeyValueDocs(d.Metrics)
	if err != nil {
		return nil, fmt.Errorf("run %q metrics: %w", d.ID, err)
	}
	hyper, err := fromKeyValueDocs(d.Hyperparameters)
	if err != nil {
		return nil, fmt.Errorf("run %q hyperparameters: %w", d.ID, err)
	}
	return &db.RunRecord{
		ID: d.ID, ProjectID: d.ProjectID, ExperimentID: d.ExperimentID,
		Name: d.Name, Description: d.Description, Owner: d.Owner, CodeVersion: d.CodeVersion,
		DateCreated: d.DateCreated, DateUpdated: d.DateUpdated,
		StartTime: d.StartTime, EndTime: d.EndTime,
		Attributes: attrs, Metrics: metrics, Hyperparameters: hyper,
	}, nil
}

// toKeyValueDocs never returns nil so empty containers are stored as [] rather than null.
func toKeyValueDocs(entries []value.KeyValue) []keyValueDoc {
	out := make([]keyValueDoc, len(entries))
	for i, kv := range entries {
		out[i] = keyValueDoc{Key: kv.Key, Kind: kv.Value.Kind().String(), Value: kv.Value.Interface()}
	}
	return out
}

func fromKeyValueDocs(docs []keyValueDoc) ([]value.KeyValue, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]value.KeyValue, len(docs))
	for i, d := range docs {
		v, err := value.FromInterface(plain(d.Value))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", d.Key, err)
		}
		kind, err := value.ParseKind(d.Kind)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", d.Key, err)
		}
		if kind != v.Kind() {
			return nil, fmt.Errorf("key %q: stored kind %s does not match %s value", d.Key, kind, v.Kind())
		}
		out[i] = value.KeyValue{Key: d.Key, Value: v}
	}
	return out, nil
}

// plain converts driver container types into []any / map[string]any.
func plain(x any) any {
	switch t := x.(type) {
	case primitive.A:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = plain(item)
		}
		return out
	case primitive.D:
		out := make(map[string]any, len(t))
		for _, e := range t {
			out[e.Key] = plain(e.Value)
		}
		return out
	case primitive.M:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = plain(v)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = plain(v)
		}
		return out
	default:
		return x
	}
}
