package navguard

//go:generate mockgen -package mocknavguard -source=interface.go -destination=mock/mocknavguard.go *

// Evaluator is implemented by *Guard.
type Evaluator interface {
	Evaluate(candidate string) Verdict
}

var _ Evaluator = (*Guard)(nil)
