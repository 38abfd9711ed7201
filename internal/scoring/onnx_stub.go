//go:build !cgo
// +build !cgo

package scoring

import (
	"context"
	"errors"
)

// ONNXScorer stub type when built without CGO (see onnx.go for the real
// implementation).
type ONNXScorer struct{}

// NewONNXScorer returns an error when built without CGO.
func NewONNXScorer(_ ModelSpec) (*ONNXScorer, error) {
	return nil, errors.New("ONNX scorer requires CGO; build with CGO_ENABLED=1 and onnxruntime")
}

func (s *ONNXScorer) Predict(_ context.Context, _ []float32) ([]float32, error) {
	return nil, errors.New("ONNX scorer not available in this build")
}

func (s *ONNXScorer) Close() error { return nil }
