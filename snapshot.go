package randgraph

import "fmt"

// Snapshot is a serializable report of a RandomGraph. Statistics that were
// not requested are nil and omitted from JSON and YAML.
type Snapshot struct {
	ID       string `json:"id" yaml:"id"`
	Model    Model  `json:"model" yaml:"model"`
	Params   Params `json:"params" yaml:"params"`
	Seed     int64  `json:"seed" yaml:"seed"`
	Attempts int    `json:"attempts" yaml:"attempts"`
	Vertices int    `json:"vertices" yaml:"vertices"`
	Edges    int    `json:"edges" yaml:"edges"`

	AveragePathLength      *float64 `json:"average_path_length,omitempty" yaml:"average_path_length,omitempty"`
	ExactAveragePathLength *float64 `json:"exact_average_path_length,omitempty" yaml:"exact_average_path_length,omitempty"`
	ClusteringCoefficient  *float64 `json:"clustering_coefficient,omitempty" yaml:"clustering_coefficient,omitempty"`
	AverageDegree          *float64 `json:"average_degree,omitempty" yaml:"average_degree,omitempty"`
}

// Snapshot computes the requested statistics (AllStats when none are
// given) and returns them with the run metadata.
func (r *RandomGraph) Snapshot(stats ...Stat) (*Snapshot, error) {
	if len(stats) == 0 {
		stats = AllStats
	}
	s := &Snapshot{
		ID:       r.id.String(),
		Model:    r.model,
		Params:   r.params,
		Seed:     r.seed,
		Attempts: r.attempts,
		Vertices: r.graph.VertexCount(),
		Edges:    r.graph.EdgeCount(),
	}
	for _, st := range stats {
		switch st {
		case StatAveragePathLength:
			v, err := r.AveragePathLength()
			if err != nil {
				return nil, err
			}
			s.AveragePathLength = &v
		case StatExactAveragePathLength:
			v, err := r.ExactAveragePathLength()
			if err != nil {
				return nil, err
			}
			s.ExactAveragePathLength = &v
		case StatClustering:
			v := r.ClusteringCoefficient()
			s.ClusteringCoefficient = &v
		case StatAverageDegree:
			v := r.AverageDegree()
			s.AverageDegree = &v
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStat, st)
		}
	}
	return s, nil
}
