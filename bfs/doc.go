// Package bfs provides breadth-first search over a core.Graph and the
// connectivity checks built on it.
//
// Vertex IDs in a core.Graph are the contiguous integers 0..n-1, so a walk
// keeps its state in plain slices: Result.Dist[v] is the hop distance of v
// from the source (Unreached if v was not discovered) and Result.Order lists
// vertices in discovery order. The discovery slice doubles as the queue.
//
// Operations
//
//   - BFS(g, start, opts...):        distances and order from one vertex.
//   - IsConnected(g):                single component check from vertex 0.
//   - ShortestPathLength(g, u, v):   hop distance, stops once v is discovered.
//   - Components(g):                 all components, ordered by smallest vertex.
//
// Options are WithContext (cancellation, checked once per dequeued vertex)
// and WithTarget (early stop).
//
// Determinism
//
//	core.Graph.Neighbors returns IDs sorted ascending and BFS enqueues them in
//	that order, so Order is reproducible.
//
// Errors
//
//   - ErrGraphNil              if the graph pointer is nil.
//   - ErrStartVertexNotFound   if the start vertex does not exist.
//   - ErrTargetVertexNotFound  if a target does not exist.
//   - ErrUnreachable           if no path exists (ShortestPathLength, Result.DistanceTo).
package bfs
