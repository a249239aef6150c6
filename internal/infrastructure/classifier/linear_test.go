package classifier

import (
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, art Artifact) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock_model.gob")
	if err := Save(path, art); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Fatal("Expected an error for a missing artifact")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := writeArtifact(t, Artifact{Weights: [2]float64{0.7, -0.3}, Bias: 0.1, Currency: "INR"})

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Currency() != "INR" {
		t.Errorf("Currency = %s, want INR", m.Currency())
	}
}

func TestLoad_DefaultsCurrency(t *testing.T) {
	path := writeArtifact(t, Artifact{Weights: [2]float64{1, 1}})

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Currency() != "INR" {
		t.Errorf("Currency = %s, want the INR default", m.Currency())
	}
}

func TestPredict_DecisionRule(t *testing.T) {
	path := writeArtifact(t, Artifact{Weights: [2]float64{1.0, -1.0}, Currency: "INR"})
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cases := []struct {
		oc, hl float64
		want   int
	}{
		{2.0, 1.0, 1},  // positive score
		{1.0, 2.0, 0},  // negative score
		{0.0, 0.0, 0},  // zero score is not up
		{-1.0, -3.0, 1},
	}
	for _, c := range cases {
		if got := m.Predict(c.oc, c.hl); got != c.want {
			t.Errorf("Predict(%v,%v) = %d, want %d", c.oc, c.hl, got, c.want)
		}
	}
}

func TestPredict_Deterministic(t *testing.T) {
	path := writeArtifact(t, Artifact{Weights: [2]float64{0.5, 0.25}, Bias: -0.1, Currency: "INR"})
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	first := m.Predict(1.25, -0.5)
	for i := 0; i < 10; i++ {
		if got := m.Predict(1.25, -0.5); got != first {
			t.Fatalf("Prediction changed between identical calls: %d vs %d", first, got)
		}
	}
}
