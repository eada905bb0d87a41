package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/runstore/internal/db"
	"github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
)

// Table names.
const (
	tableProjects    = "projects"
	tableExperiments = "experiments"
	tableRuns        = "experiment_runs"
	tableKeyValues   = "run_key_values"
)

// Container discriminators in run_key_values.container.
const (
	containerAttributes      = string(run.Attributes)
	containerMetrics         = string(run.Metrics)
	containerHyperparameters = string(run.Hyperparameters)
)

type projectModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description;not null"`
	Owner       string `gorm:"column:owner;not null"`
	DateCreated int64  `gorm:"column:date_created;not null"`
	DateUpdated int64  `gorm:"column:date_updated;not null"`
}

func (projectModel) TableName() string { return tableProjects }

type experimentModel struct {
	ID          string `gorm:"column:id;primaryKey"`
	ProjectID   string `gorm:"column:project_id;not null"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description;not null"`
	Owner       string `gorm:"column:owner;not null"`
	DateCreated int64  `gorm:"column:date_created;not null"`
	DateUpdated int64  `gorm:"column:date_updated;not null"`
}

func (experimentModel) TableName() string { return tableExperiments }

type runModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	ProjectID    string `gorm:"column:project_id;not null"`
	ExperimentID string `gorm:"column:experiment_id;not null"`
	Name         string `gorm:"column:name;not null"`
	Description  string `gorm:"column:description;not null"`
	Owner        string `gorm:"column:owner;not null"`
	CodeVersion  string `gorm:"column:code_version;not null"`
	DateCreated  int64  `gorm:"column:date_created;not null"`
	DateUpdated  int64  `gorm:"column:date_updated;not null"`
	StartTime    *int64 `gorm:"column:start_time"`
	EndTime      *int64 `gorm:"column:end_time"`
}

func (runModel) TableName() string { return tableRuns }

// keyValueModel is one container entry. Exactly one typed column is set for
// scalar kinds; raw_value always holds the JSON encoding.
type keyValueModel struct {
	ID        int64    `gorm:"column:id;primaryKey;autoIncrement"`
	RunID     string   `gorm:"column:run_id;not null"`
	Container string   `gorm:"column:container;not null"`
	Position  int      `gorm:"column:position;not null"`
	Key       string   `gorm:"column:key;not null"`
	ValueKind string   `gorm:"column:value_kind;not null"`
	NumValue  *float64 `gorm:"column:num_value"`
	StrValue  *string  `gorm:"column:str_value"`
	BoolValue *bool    `gorm:"column:bool_value"`
	RawValue  string   `gorm:"column:raw_value;type:text;not null"`
}

func (keyValueModel) TableName() string { return tableKeyValues }

func toProjectModel(r *db.ProjectRecord) projectModel {
	return projectModel{
		ID: r.ID, Name: r.Name, Description: r.Description, Owner: r.Owner,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
	}
}

func (m *projectModel) record() *db.ProjectRecord {
	return &db.ProjectRecord{
		ID: m.ID, Name: m.Name, Description: m.Description, Owner: m.Owner,
		DateCreated: m.DateCreated, DateUpdated: m.DateUpdated,
	}
}

func toExperimentModel(r *db.ExperimentRecord) experimentModel {
	return experimentModel{
		ID: r.ID, ProjectID: r.ProjectID, Name: r.Name, Description: r.Description, Owner: r.Owner,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
	}
}

func (m *experimentModel) record() *db.ExperimentRecord {
	return &db.ExperimentRecord{
		ID: m.ID, ProjectID: m.ProjectID, Name: m.Name, Description: m.Description, Owner: m.Owner,
		DateCreated: m.DateCreated, DateUpdated: m.DateUpdated,
	}
}

func toRunModel(r *db.RunRecord) runModel {
	return runModel{
		ID: r.ID, ProjectID: r.ProjectID, ExperimentID: r.ExperimentID,
		Name: r.Name, Description: r.Description, Owner: r.Owner, CodeVersion: r.CodeVersion,
		DateCreated: r.DateCreated, DateUpdated: r.DateUpdated,
		StartTime: r.StartTime, EndTime: r.EndTime,
	}
}

// toKeyValueModels flattens the three containers into child rows.
func toKeyValueModels(r *db.RunRecord) ([]keyValueModel, error) {
	var out []keyValueModel
	for _, c := range []struct {
		name    string
		entries []value.KeyValue
	}{
		{containerAttributes, r.Attributes},
		{containerMetrics, r.Metrics},
		{containerHyperparameters, r.Hyperparameters},
	} {
		for i, kv := range c.entries {
			m, err := toKeyValueModel(r.ID, c.name, i, kv)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func toKeyValueModel(runID, container string, position int, kv value.KeyValue) (keyValueModel, error) {
	raw, err := json.Marshal(kv.Value)
	if err != nil {
		return keyValueModel{}, fmt.Errorf("encode %s %q: %w", container, kv.Key, err)
	}
	m := keyValueModel{
		RunID: runID, Container: container, Position: position,
		Key: kv.Key, ValueKind: kv.Value.Kind().String(), RawValue: string(raw),
	}
	switch kv.Value.Kind() {
	case value.KindNumber:
		n := kv.Value.Num()
		m.NumValue = &n
	case value.KindString:
		s := kv.Value.Str()
		m.StrValue = &s
	case value.KindBool:
		b := kv.Value.Bool()
		m.BoolValue = &b
	case value.KindList, value.KindStruct:
	default:
		return keyValueModel{}, fmt.Errorf("encode %s %q: empty value", container, kv.Key)
	}
	return m, nil
}

// assembleRun rebuilds a record from its row and its child rows ordered by container, position.
func assembleRun(m *runModel, kvs []keyValueModel) (db.RunRecord, error) {
	rec := db.RunRecord{
		ID: m.ID, ProjectID: m.ProjectID, ExperimentID: m.ExperimentID,
		Name: m.Name, Description: m.Description, Owner: m.Owner, CodeVersion: m.CodeVersion,
		DateCreated: m.DateCreated, DateUpdated: m.DateUpdated,
		StartTime: m.StartTime, EndTime: m.EndTime,
	}
	for i := range kvs {
		kv := &kvs[i]
		var v value.Value
		if err := json.Unmarshal([]byte(kv.RawValue), &v); err != nil {
			return db.RunRecord{}, fmt.Errorf("run %q %s %q: %w", m.ID, kv.Container, kv.Key, err)
		}
		if v.Kind().String() != kv.ValueKind {
			return db.RunRecord{}, fmt.Errorf("run %q %s %q: stored kind %s does not match %s value",
				m.ID, kv.Container, kv.Key, kv.ValueKind, v.Kind())
		}
		entry := value.KeyValue{Key: kv.Key, Value: v}
		switch kv.Container {
		case containerAttributes:
			rec.Attributes = append(rec.Attributes, entry)
		case containerMetrics:
			rec.Metrics = append(rec.Metrics, entry)
		case containerHyperparameters:
			rec.Hyperparameters = append(rec.Hyperparameters, entry)
		default:
			return db.RunRecord{}, fmt.Errorf("run %q: unknown container %q", m.ID, kv.Container)
		}
	}
	return rec, nil
}
