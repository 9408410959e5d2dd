package pricing

import "errors"

// ErrPrediction is returned when the model cannot produce an estimate for a
// feature vector, for example because its length does not match the model.
var ErrPrediction = errors.New("prediction failed")
