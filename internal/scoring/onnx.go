//go:build cgo
// +build cgo

package scoring

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXScorer runs the model with ONNX Runtime. It requires CGO and the
// onnxruntime shared library.
type ONNXScorer struct {
	spec    ModelSpec
	session *ort.AdvancedSession
	// Tensors are allocated once and reused across Run() calls; the
	// mutex serializes access to their backing buffers.
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
	mu           sync.Mutex
}

// NewONNXScorer loads the model artifact described by spec.
// InitializeEnvironment is called if not already done.
func NewONNXScorer(spec ModelSpec) (*ONNXScorer, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX runtime: %w", err)
	}

	inputData := make([]float32, spec.InputArity)
	inputTensor, err := ort.NewTensor(ort.NewShape(1, int64(spec.InputArity)), inputData)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	outputData := make([]float32, spec.OutputArity)
	outputTensor, err := ort.NewTensor(ort.NewShape(1, int64(spec.OutputArity)), outputData)
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(
		spec.Path,
		[]string{spec.InputName},
		[]string{spec.OutputName},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		nil,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session for %s: %w", spec.Path, err)
	}

	return &ONNXScorer{
		spec:         spec,
		session:      session,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

// Predict runs one inference over the given feature vector.
func (s *ONNXScorer) Predict(ctx context.Context, features []float32) ([]float32, error) {
	if len(features) != s.spec.InputArity {
		return nil, fmt.Errorf("model %s expects %d features, got %d",
			s.spec.Version, s.spec.InputArity, len(features))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copy(s.inputTensor.GetData(), features)
	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	out := make([]float32, s.spec.OutputArity)
	copy(out, s.outputTensor.GetData()[:s.spec.OutputArity])
	return out, nil
}

// Close destroys the session and tensors.
func (s *ONNXScorer) Close() error {
	var err error
	if s.session != nil {
		err = s.session.Destroy()
		s.session = nil
	}
	if s.inputTensor != nil {
		_ = s.inputTensor.Destroy()
		s.inputTensor = nil
	}
	if s.outputTensor != nil {
		_ = s.outputTensor.Destroy()
		s.outputTensor = nil
	}
	return err
}
