// Package randgraph generates connected random graphs and measures them.
//
// 🚀 What is randgraph?
//
//	A small, thread-safe library for network-science experiments:
//		• Models: Gilbert G(n,p) and Watts-Strogatz small worlds
//		• Guarantee: every returned graph is connected (bounded regeneration)
//		• Statistics: average path length, clustering coefficient, average degree
//		• Reproducibility: every run records the seed that produced it
//
// Under the hood, everything is organized under a few subpackages:
//
//	core/     - the undirected graph store with per-vertex annotations
//	bfs/      - breadth-first traversal, connectivity, shortest path lengths
//	builder/  - graph constructors and the connected-graph regeneration loop
//	sampler/  - pair selection for path-length estimates
//	metrics/  - lazily cached statistics
//
// Quick start:
//
//	rg, err := randgraph.NewWattsStrogatz(ctx, 100, 2, 0.1, randgraph.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	apl, _ := rg.AveragePathLength()
//	fmt.Println(apl, rg.ClusteringCoefficient(), rg.AverageDegree())
//
// The randgraph command wraps the same API for one-off runs from a shell.
package randgraph
