package classifier

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Artifact is the serialized form of the trained model: a linear decision
// rule over the two trend features, plus the currency the training data was
// expressed in.
type Artifact struct {
	Weights  [2]float64
	Bias     float64
	Currency string
}

// Linear is a pre-trained two-feature binary classifier loaded from disk.
// It is read-only after Load and safe for concurrent use.
type Linear struct {
	artifact Artifact
}

// Load reads a gob-serialized Artifact. The dashboard cannot run without a
// model, so callers treat any error here as fatal.
func Load(path string) (*Linear, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	var art Artifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if art.Currency == "" {
		art.Currency = "INR"
	}
	return &Linear{artifact: art}, nil
}

// Save writes an Artifact to path. Used by the mkmodel helper.
func Save(path string, art Artifact) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model artifact: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(art); err != nil {
		return fmt.Errorf("encode model artifact: %w", err)
	}
	return nil
}

// Predict returns 1 when the model expects an upward move, 0 otherwise.
// Features must already be in the model currency, in fixed order.
func (m *Linear) Predict(openCloseDelta, highLowDelta float64) int {
	score := m.artifact.Weights[0]*openCloseDelta + m.artifact.Weights[1]*highLowDelta + m.artifact.Bias
	if score > 0 {
		return 1
	}
	return 0
}

// Currency reports the currency the model was trained on.
func (m *Linear) Currency() string {
	return m.artifact.Currency
}
