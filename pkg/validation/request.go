package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cpprhtn/Polaris/internal/app/dto"
)

// validate is shared; the validator instance caches struct metadata.
var validate = validator.New()

// ValidateParseRequest checks wire-level integrity of a submitted
// snapshot: every node needs an id and kind, every edge a source and
// target. Topology beyond that (dangling endpoints, self-loops) is
// permitted and left to the analyzer to report on.
func ValidateParseRequest(req *dto.ParseRequest) error {
	if req == nil {
		return fmt.Errorf("request is nil")
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("invalid pipeline payload: %w", err)
	}
	return nil
}
