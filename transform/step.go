// Package transform implements document transforms, which are used by the
// editor to treat changes as first-class values, which can be saved, shared,
// and reasoned about.
package transform

import "github.com/cozy/listedit-go/model"

// Step objects represent an atomic change. It generally applies only to the
// document it was created for, since the block indexes stored in it will
// only make sense for that document.
type Step interface {
	// Apply applies this step to the given document, returning a result
	// object that either indicates failure, if the step can not be applied
	// to this document, or indicates success by containing a transformed
	// document.
	Apply(doc *model.Document) StepResult

	// Invert creates an inverted version of this step. Needs the document as
	// it was before the step as argument.
	Invert(doc *model.Document) Step
}

// StepResult is the result of applying a step. Contains either a new
// document or a failure value.
type StepResult struct {
	// The transformed document.
	Doc *model.Document
	// Text providing information about a failed step.
	Failed string
}

// OK creates a successful step result.
func OK(doc *model.Document) StepResult {
	return StepResult{Doc: doc}
}

// Fail creates a failed step result.
func Fail(message string) StepResult {
	return StepResult{Failed: message}
}
