// Package runstore is an embeddable client for the experiment run metadata
// store: projects, experiments and runs whose attributes, metrics and
// hyperparameters are open-ended typed key/value containers.
//
// Runs are queried with predicates over field paths such as "metrics.loss"
// or "endTime", sorted by any field path and ranked with top-K selection.
// The same query returns the same runs on every backend.
//
//	client, _ := runstore.New(ctx, runstore.WithPostgres("host=localhost user=runstore dbname=runstore"))
//	defer client.Close()
//
//	res, err := client.Find().
//	    Experiment("resnet").
//	    Where("metrics.loss", runstore.LTE, runstore.Number(0.25)).
//	    SortBy("metrics.accuracy", false).
//	    Page(1, 20).
//	    Do(ctx)
//
//	best, err := client.Top(ctx, runstore.Scope{ExperimentID: "resnet"}, "metrics.accuracy", false, 5)
package runstore
