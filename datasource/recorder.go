package datasource

// Recorder observes report generation and column evaluation.
// Implementations must be cheap; they are called on the hot path.
type Recorder interface {
	// NodeCreated is called for every node the Generator creates.
	NodeCreated(visible bool)

	// NodePruned is called for every node discarded as irrelevant.
	NodePruned()

	// ColumnEvaluated is called once per computed cell.
	ColumnEvaluated(column string, err error)
}

type nopRecorder struct{}

func (nopRecorder) NodeCreated(bool)              {}
func (nopRecorder) NodePruned()                   {}
func (nopRecorder) ColumnEvaluated(string, error) {}
