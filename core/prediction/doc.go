// Package prediction compares fitted values against real values and
// derives accuracy metrics without any knowledge of how the prediction
// was produced. Three kinds exist: Prediction for arbitrary comparable
// values, NumericPrediction for continuous values and BinaryPrediction
// for two-class outcomes. Instances are immutable after construction
// and every metric accessor is a pure function, so they can be shared
// between goroutines without coordination.
package prediction
