// Package scoring wraps the pre-trained ONNX model behind a small
// capability interface. The model is opaque: a fixed-order feature
// vector in, a fixed-size score vector out.
package scoring

import (
	"context"
	"fmt"
)

// Scorer is the scoring function contract. Feature order must match the
// active ModelSpec exactly; a transposition produces garbage scores,
// not an error.
type Scorer interface {
	Predict(ctx context.Context, features []float32) ([]float32, error)
	Close() error
}

// Model version identifiers.
const (
	VersionProductivity = "v1"
	VersionStress       = "v3"
)

// ModelSpec describes one model version: where the artifact lives and
// the exact shape of its input and output tensors.
type ModelSpec struct {
	Version     string
	Path        string
	InputName   string
	OutputName  string
	InputArity  int
	OutputArity int
}

// SpecFor returns the ModelSpec for a configured version and artifact path.
func SpecFor(version, path string) (ModelSpec, error) {
	switch version {
	case VersionProductivity:
		// Inputs: durationInHours, startHour, endHour, dayOfWeek.
		// Outputs: morning, afternoon, night productivity.
		return ModelSpec{
			Version:     VersionProductivity,
			Path:        path,
			InputName:   "float_input",
			OutputName:  "variable",
			InputArity:  4,
			OutputArity: 3,
		}, nil
	case VersionStress:
		// Inputs: sleepDuration, qualityOfSleep, physicalActivityLevel,
		// heartRate, dailySteps, genderNum, age, disorderNum.
		// Output: stress level on a 0-10 scale.
		return ModelSpec{
			Version:     VersionStress,
			Path:        path,
			InputName:   "float_input",
			OutputName:  "variable",
			InputArity:  8,
			OutputArity: 1,
		}, nil
	default:
		return ModelSpec{}, fmt.Errorf("unknown model version %q", version)
	}
}
