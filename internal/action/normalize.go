package action

import (
	"errors"
	"strings"

	"job-board/internal/domain/apperr"

	"github.com/go-playground/validator/v10"
)

// fallback is the code/key used for validation failures.
type fallback struct {
	code apperr.Code
	key  string
}

var (
	inputInvalid  = fallback{code: apperr.CodeInvalidInput, key: apperr.KeyInputInvalid}
	filterInvalid = fallback{code: apperr.CodeFilterInvalid, key: apperr.KeyFilterInvalid}
)

// normalize converts err into an ActionError. Anything that is neither a
// domain error nor a validation error is returned unchanged as fatal.
func normalize(err error, fb fallback) (*ActionError, error) {
	if err == nil {
		return nil, nil
	}

	if de, ok := apperr.As(err); ok {
		return &ActionError{ErrorCode: de.Code, ErrorKey: de.Key, ErrorMessage: de.Message}, nil
	}

	var issues []string
	var ves validator.ValidationErrors
	var ve *ValidationError
	switch {
	case errors.As(err, &ves):
		for _, fe := range ves {
			issues = append(issues, issueMessage(fe))
		}
	case errors.As(err, &ve):
		issues = ve.Issues
	default:
		return nil, err
	}

	return &ActionError{ErrorCode: fb.code, ErrorKey: fb.key, ErrorMessage: strings.Join(issues, ", ")}, nil
}
