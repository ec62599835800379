package domain

import "fmt"

// Question represents one incoming DNS question to be answered from the
// record store. Type may be RRTypeANY for a typeless lookup, in which case
// every record type stored under the resolved name is returned.
type Question struct {
	Name string
	Type RRType
}

// NewQuestion constructs a Question and validates its fields.
func NewQuestion(name string, rrtype RRType) (Question, error) {
	q := Question{
		Name: name,
		Type: rrtype,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks whether the Question fields are structurally valid.
func (q Question) Validate() error {
	if q.Name == "" {
		return fmt.Errorf("question name must not be empty")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("unsupported RRType: %d", q.Type)
	}
	return nil
}
