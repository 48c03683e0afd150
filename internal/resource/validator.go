package resource

import (
	"fmt"
	"strings"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// ValidateUpload checks the submitted metadata fields and returns either a
// normalized input or the full list of field errors. All fields are checked
// in one pass so the caller sees every violation at once.
func ValidateUpload(form map[string]string) (UploadInput, []FieldError) {
	var errs []FieldError

	title := strings.TrimSpace(form["title"])
	switch {
	case title == "":
		errs = append(errs, FieldError{Field: "title", Message: "Title is required", Value: form["title"]})
	case len(title) > maxTitleLength:
		errs = append(errs, FieldError{Field: "title", Message: "Title must not exceed 200 characters", Value: title})
	}

	description := strings.TrimSpace(form["description"])
	switch {
	case description == "":
		errs = append(errs, FieldError{Field: "description", Message: "Description is required", Value: form["description"]})
	case len(description) > maxDescriptionLength:
		errs = append(errs, FieldError{Field: "description", Message: "Description must not exceed 1000 characters", Value: description})
	}

	errs = appendEnumError(errs, "category", "Category", form["category"], ValidCategories)
	errs = appendEnumError(errs, "language", "Language", form["language"], ValidLanguages)
	errs = appendEnumError(errs, "provider", "Provider", form["provider"], ValidProviders)
	errs = appendEnumError(errs, "role", "Role", form["role"], ValidRoles)

	if len(errs) > 0 {
		return UploadInput{}, errs
	}

	return UploadInput{
		Title:       title,
		Description: description,
		Category:    form["category"],
		Language:    form["language"],
		Provider:    form["provider"],
		Role:        form["role"],
	}, nil
}

func appendEnumError(errs []FieldError, field, label, value string, allowed []string) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: fmt.Sprintf("%s is required", label), Value: value})
	}
	for _, v := range allowed {
		if value == v {
			return errs
		}
	}
	return append(errs, FieldError{
		Field:   field,
		Message: fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")),
		Value:   value,
	})
}
