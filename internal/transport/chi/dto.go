package chi

import (
	"github.com/kailas-cloud/runstore/internal/domain"
	domexp "github.com/kailas-cloud/runstore/internal/domain/experiment"
	domproj "github.com/kailas-cloud/runstore/internal/domain/project"
	domquery "github.com/kailas-cloud/runstore/internal/domain/query"
	"github.com/kailas-cloud/runstore/internal/domain/query/predicate"
	"github.com/kailas-cloud/runstore/internal/domain/query/request"
	"github.com/kailas-cloud/runstore/internal/domain/query/result"
	domrun "github.com/kailas-cloud/runstore/internal/domain/run"
	"github.com/kailas-cloud/runstore/internal/domain/value"
	gen "github.com/kailas-cloud/runstore/internal/transport/generated"
	experimentuc "github.com/kailas-cloud/runstore/internal/usecase/experiment"
	projectuc "github.com/kailas-cloud/runstore/internal/usecase/project"
)

func projectToGen(p domproj.Project) gen.Project {
	return gen.Project{
		Id:          p.ID(),
		Name:        p.Name(),
		Description: optString(p.Description()),
		Owner:       optString(p.Owner()),
		DateCreated: p.DateCreated(),
		DateUpdated: p.DateUpdated(),
	}
}

func projectParamsFromGen(req gen.CreateProjectRequest) projectuc.CreateParams {
	return projectuc.CreateParams{
		ID:          derefString(req.Id),
		Name:        req.Name,
		Description: derefString(req.Description),
		Owner:       derefString(req.Owner),
	}
}

func experimentToGen(e domexp.Experiment) gen.Experiment {
	return gen.Experiment{
		Id:          e.ID(),
		ProjectId:   e.ProjectID(),
		Name:        e.Name(),
		Description: optString(e.Description()),
		Owner:       optString(e.Owner()),
		DateCreated: e.DateCreated(),
		DateUpdated: e.DateUpdated(),
	}
}

func experimentParamsFromGen(req gen.CreateExperimentRequest) experimentuc.CreateParams {
	return experimentuc.CreateParams{
		ID:          derefString(req.Id),
		ProjectID:   req.ProjectId,
		Name:        req.Name,
		Description: derefString(req.Description),
		Owner:       derefString(req.Owner),
	}
}

func runToGen(r domrun.Run) gen.ExperimentRun {
	return gen.ExperimentRun{
		Id:              r.ID(),
		ProjectId:       r.ProjectID(),
		ExperimentId:    r.ExperimentID(),
		Name:            optString(r.Name()),
		Description:     optString(r.Description()),
		Owner:           optString(r.Owner()),
		CodeVersion:     optString(r.CodeVersion()),
		DateCreated:     r.DateCreated(),
		DateUpdated:     r.DateUpdated(),
		StartTime:       r.StartTime(),
		EndTime:         r.EndTime(),
		Attributes:      keyValuesToGen(r.Attributes()),
		Metrics:         keyValuesToGen(r.Metrics()),
		Hyperparameters: keyValuesToGen(r.Hyperparameters()),
	}
}

func runParamsFromGen(req gen.CreateExperimentRunRequest) domrun.Params {
	return domrun.Params{
		ID:              derefString(req.Id),
		ProjectID:       req.ProjectId,
		ExperimentID:    req.ExperimentId,
		Name:            derefString(req.Name),
		Description:     derefString(req.Description),
		Owner:           derefString(req.Owner),
		CodeVersion:     derefString(req.CodeVersion),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Attributes:      keyValuesFromGen(derefKeyValues(req.Attributes)),
		Metrics:         keyValuesFromGen(derefKeyValues(req.Metrics)),
		Hyperparameters: keyValuesFromGen(derefKeyValues(req.Hyperparameters)),
	}
}

// keyValuesToGen never returns nil so empty containers encode as [].
func keyValuesToGen(kvs []value.KeyValue) []gen.KeyValue {
	out := make([]gen.KeyValue, len(kvs))
	for i, kv := range kvs {
		out[i] = gen.KeyValue{Key: kv.Key, Value: kv.Value}
	}
	return out
}

func keyValuesFromGen(kvs []gen.KeyValue) []value.KeyValue {
	if len(kvs) == 0 {
		return nil
	}
	out := make([]value.KeyValue, len(kvs))
	for i, kv := range kvs {
		out[i] = value.KeyValue{Key: kv.Key, Value: kv.Value}
	}
	return out
}

func resultToGen(res result.Result) gen.RunsResponse {
	resp := gen.RunsResponse{TotalRecords: res.TotalRecords()}
	if res.IDsOnly() {
		ids := res.IDs()
		resp.ExperimentRunIds = &ids
		return resp
	}
	runs := res.Runs()
	items := make([]gen.ExperimentRun, len(runs))
	for i := range runs {
		items[i] = runToGen(runs[i])
	}
	resp.ExperimentRuns = &items
	return resp
}

func predicatesFromGen(in []gen.Predicate) ([]predicate.Predicate, error) {
	out := make([]predicate.Predicate, 0, len(in))
	for i, p := range in {
		op, err := domquery.ParseOperator(p.Operator)
		if err != nil {
			return nil, domain.InvalidArgumentf("predicate %d: %v", i, err)
		}
		pred, err := predicate.New(p.Key, op, p.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, pred)
	}
	return out, nil
}

func findFromGen(req gen.FindExperimentRunsRequest, limits request.Limits) (request.Find, error) {
	scope, err := request.NewScope(
		derefString(req.ProjectId), derefString(req.ExperimentId), derefStrings(req.ExperimentRunIds), limits)
	if err != nil {
		return request.Find{}, err
	}
	var preds []predicate.Predicate
	if req.Predicates != nil {
		if preds, err = predicatesFromGen(*req.Predicates); err != nil {
			return request.Find{}, err
		}
	}
	var sortKey *request.SortKey
	if raw := derefString(req.SortKey); raw != "" {
		k, err := request.NewSortKey(raw, derefBool(req.Ascending))
		if err != nil {
			return request.Find{}, err
		}
		sortKey = &k
	}
	return request.NewFind(scope, preds, sortKey,
		derefInt(req.PageNumber), derefInt(req.PageLimit), derefBool(req.IdsOnly), limits)
}

func sortFromGen(req gen.SortExperimentRunsRequest, limits request.Limits) (request.Sort, error) {
	scope, err := request.NewScope("", "", req.ExperimentRunIds, limits)
	if err != nil {
		return request.Sort{}, err
	}
	key, err := request.NewSortKey(req.SortKey, derefBool(req.Ascending))
	if err != nil {
		return request.Sort{}, err
	}
	return request.NewSort(scope, key, derefBool(req.IdsOnly))
}

func topFromGen(req gen.TopExperimentRunsRequest, limits request.Limits) (request.TopK, error) {
	scope, err := request.NewScope(
		derefString(req.ProjectId), derefString(req.ExperimentId), derefStrings(req.ExperimentRunIds), limits)
	if err != nil {
		return request.TopK{}, err
	}
	key, err := request.NewSortKey(req.SortKey, derefBool(req.Ascending))
	if err != nil {
		return request.TopK{}, err
	}
	return request.NewTopK(scope, key, req.TopK, derefBool(req.IdsOnly))
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefStrings(p *[]string) []string {
	if p == nil {
		return nil
	}
	return *p
}

func derefKeyValues(p *[]gen.KeyValue) []gen.KeyValue {
	if p == nil {
		return nil
	}
	return *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefBool(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}
