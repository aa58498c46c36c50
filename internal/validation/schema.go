package validation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

//go:embed schemas/post.schema.json
var postSchemaSource []byte

const postSchemaURL = "post.schema.json"

var (
	postSchemaOnce sync.Once
	postSchema     *jsonschema.Schema
	postSchemaErr  error
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError lists every schema violation found in a payload.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issueLocation(issue.Location)
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, location+": "+issue.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from err.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// Field returns the top level property an issue points at, "" for the root.
func (i ValidationIssue) Field() string {
	location := strings.TrimPrefix(strings.TrimPrefix(i.Location, "#"), "/")
	if head, _, found := strings.Cut(location, "/"); found {
		return head
	}
	return location
}

// ValidatePost checks decoded post metadata against the embedded post schema.
// Values that are not JSON native (time.Time, int, yaml maps) are converted
// through a JSON round trip first.
func ValidatePost(payload map[string]any) error {
	compiled, err := compiledPostSchema()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	doc, err := JSONCompatible(payload)
	if err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	if err := compiled.Validate(doc); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// JSONCompatible returns payload re-decoded from its JSON encoding with
// numbers preserved as json.Number.
func JSONCompatible(payload map[string]any) (map[string]any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	out := map[string]any{}
	if err := decoder.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return out, nil
}

func compiledPostSchema() (*jsonschema.Schema, error) {
	postSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(postSchemaURL, bytes.NewReader(postSchemaSource)); err != nil {
			postSchemaErr = err
			return
		}
		postSchema, postSchemaErr = compiler.Compile(postSchemaURL)
	})
	return postSchema, postSchemaErr
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

func issueLocation(location string) string {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return "#"
	case strings.HasPrefix(location, "#"):
		return location
	default:
		return "#" + location
	}
}
