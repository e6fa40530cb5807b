package errors

import "regexp"

// MaxDimension bounds container and component sizes accepted from forms and
// API requests.
const MaxDimension = 1 << 15

// componentIDRegex matches component identifiers: a letter followed by
// letters, digits, dots, dashes or underscores.
var componentIDRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._-]*$`)

// ValidateComponentID validates a form component identifier. IDs key the
// layout results, so they must be non-empty, short and free of whitespace.
func ValidateComponentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidForm, "component id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidForm, "component id too long (max 128 characters)")
	}
	if !componentIDRegex.MatchString(id) {
		return New(ErrCodeInvalidForm, "invalid component id: %q", id)
	}
	return nil
}

// ValidateDimensions checks a width and height. Zero means "use the
// preferred size" and is allowed; negative or huge values are not.
func ValidateDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidDimensions, "dimensions cannot be negative: %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large: %dx%d (max %d)", width, height, MaxDimension)
	}
	return nil
}
