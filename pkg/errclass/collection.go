package errclass

import (
	"fmt"
	"strings"
)

// Collection is the result of classifying an error source: one
// dominant class and the individual entries in classifier order.
type Collection struct {
	Class  Class
	Errors []error
}

// Error renders the class followed by every entry, one per line.
func (c *Collection) Error() string {
	if len(c.Errors) == 0 {
		return fmt.Sprintf("%s: no errors", c.Class)
	}
	if len(c.Errors) == 1 {
		return fmt.Sprintf("%s: %s", c.Class, c.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(string(c.Class))
	sb.WriteString(":")
	for _, err := range c.Errors {
		sb.WriteString("\n  * ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the entries to errors.Is and errors.As.
func (c *Collection) Unwrap() []error {
	return c.Errors
}

// ErrorClass lets a Collection nested inside another error source
// contribute its own class.
func (c *Collection) ErrorClass() Class {
	return c.Class
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	return len(c.Errors)
}

// Find returns the first entry satisfying pred, in order.
func (c *Collection) Find(pred func(error) bool) (error, bool) {
	for _, err := range c.Errors {
		if pred(err) {
			return err, true
		}
	}
	return nil, false
}

// Describe lists every entry with its index, class and type, for
// failure messages.
func (c *Collection) Describe() string {
	if len(c.Errors) == 0 {
		return "  (none)"
	}
	lines := make([]string, 0, len(c.Errors))
	for i, err := range c.Errors {
		lines = append(lines, fmt.Sprintf(
			"  %d. [%s] %T: %s", i+1, ClassOf(err), err, err.Error(),
		))
	}
	return strings.Join(lines, "\n")
}
