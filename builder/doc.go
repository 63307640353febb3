// Package builder generates graphs from functional-options constructors.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, logger, observer, attempt budget, trial mode.
//   - Random models:
//     – Gilbert(n, p):           each pair joined with probability p.
//     – WattsStrogatz(n, k, p):  ring lattice of half-degree k, rewired with probability p.
//   - Deterministic fixtures: Cycle(n), Path(n), Star(n), Complete(n).
//   - Orchestrators:
//     – BuildGraph:      one pass over the constructors.
//     – BuildConnected:  regenerate until bfs.IsConnected holds, bounded by WithMaxAttempts.
//   - Instrumentation: Observer, NoopObserver, WithLogger.
//   - Validation helpers: validateMin, validateProbability, validateHalfDegree.
//
// Guarantees:
//
//   - Generated graphs are simple: no loops, no parallel edges.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping sentinels for errors.Is.
//   - Determinism: equal parameters, options and seed produce equal graphs.
//
// Example:
//
//	rep, err := builder.BuildConnected(ctx,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithLabel("gilbert")},
//		builder.Gilbert(50, 0.1))
//	if err != nil {
//		return err
//	}
//	fmt.Println(rep.Attempts, rep.Graph.EdgeCount())
package builder
