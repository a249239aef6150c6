package main

import (
	"flag"
	"fmt"
	"os"

	"trendboard/internal/infrastructure/classifier"
)

// Writes a model artifact from already-trained coefficients, for deployments
// where the weights come out of an external training pipeline.
func main() {
	out := flag.String("out", "stock_model.gob", "output artifact path")
	w1 := flag.Float64("w1", 0, "open-close delta weight")
	w2 := flag.Float64("w2", 0, "high-low delta weight")
	bias := flag.Float64("bias", 0, "decision bias")
	currency := flag.String("currency", "INR", "currency the model was trained on")
	flag.Parse()

	art := classifier.Artifact{
		Weights:  [2]float64{*w1, *w2},
		Bias:     *bias,
		Currency: *currency,
	}
	if err := classifier.Save(*out, art); err != nil {
		fmt.Printf("Failed to write artifact: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (weights=%v bias=%v currency=%s)\n", *out, art.Weights, art.Bias, art.Currency)
}
