// Package metrics computes summary statistics of an undirected graph:
// average shortest path length, average local clustering coefficient and
// average degree.
//
// Stats wraps one graph and computes each statistic at most once. Results
// are cached behind explicit computed flags, so a legitimate zero is cached
// like any other value; a computation that fails is not cached and is
// retried on the next call. The graph is treated as immutable while a Stats
// value is in use: mutations after a statistic was computed are not
// reflected.
//
// Average path length is estimated over the pairs chosen by package
// sampler (exhaustive for small graphs, 100 random pairs otherwise).
// ExactAveragePathLength averages over every pair instead.
//
// Clustering of a vertex v with d ≥ 2 neighbors is the fraction of ordered
// neighbor pairs (u, w), u ≠ w, that are themselves adjacent. Vertices with
// fewer than two neighbors score 0. Each per-vertex value is stored on the
// graph under ClusteringKey.
package metrics
