package errclass

// Classifier turns an error source into a Collection. Implementations
// must be deterministic and total: the same input always yields the
// same class and entry order, and every input yields exactly one
// class.
type Classifier interface {
	Classify(errs []error) *Collection
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(errs []error) *Collection

// Classify calls f.
func (f ClassifierFunc) Classify(errs []error) *Collection {
	return f(errs)
}

// DefaultClassifier flattens nested collections and joined errors
// depth-first, drops nil entries and picks the dominant class of the
// remaining entries. A multi-error that reports its own class is kept
// as a single entry.
type DefaultClassifier struct{}

// Default is the classifier used when none is configured.
var Default Classifier = DefaultClassifier{}

// Classify implements Classifier.
func (DefaultClassifier) Classify(errs []error) *Collection {
	var (
		flat    []error
		classes []Class
	)

	var walk func(err error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
			return
		case *Collection:
			if e == nil {
				return
			}
			classes = append(classes, e.Class)
			for _, inner := range e.Errors {
				walk(inner)
			}
		case Classed:
			flat = append(flat, err)
			classes = append(classes, e.ErrorClass())
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		default:
			flat = append(flat, err)
			classes = append(classes, ClassOf(err))
		}
	}

	for _, err := range errs {
		walk(err)
	}

	return &Collection{
		Class:  Dominant(classes...),
		Errors: flat,
	}
}

// Classify runs the Default classifier.
func Classify(errs ...error) *Collection {
	return Default.Classify(errs)
}
