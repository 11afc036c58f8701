package usecase

import (
	"fmt"
	"strings"
)

// maxEnrichBatch caps one enrichment call; the vendor bills per contact and
// rejects oversized batches anyway.
const maxEnrichBatch = 100

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEnrichInput is fail-fast: any violation means no vendor call and
// no credits spent.
func ValidateEnrichInput(input EnrichInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.RequestID) == "" {
		errors = append(errors, ValidationError{"requestId", "is required"})
	}

	if len(input.ContactIDs) == 0 {
		errors = append(errors, ValidationError{"contactIds", "must not be empty"})
	} else if len(input.ContactIDs) > maxEnrichBatch {
		errors = append(errors, ValidationError{"contactIds", fmt.Sprintf("must not exceed %d contacts", maxEnrichBatch)})
	}

	for _, id := range input.ContactIDs {
		if strings.TrimSpace(id) == "" {
			errors = append(errors, ValidationError{"contactIds", "must not contain empty ids"})
			break
		}
	}

	if !input.RevealEmails && !input.RevealPhones {
		errors = append(errors, ValidationError{"revealEmails", "at least one of revealEmails or revealPhones must be set"})
	}

	return errors
}

func ValidateSearchInput(input SearchInput) []ValidationError {
	var errors []ValidationError

	if input.Target != TargetVendor && input.Target != TargetLocal {
		errors = append(errors, ValidationError{"target", "must be vendor or local"})
	}
	if input.Kind != KindContacts && input.Kind != KindCompanies {
		errors = append(errors, ValidationError{"kind", "must be contacts or companies"})
	}
	if input.Page < 0 {
		errors = append(errors, ValidationError{"page", "must not be negative"})
	}
	if input.Size < 0 || input.Size > 100 {
		errors = append(errors, ValidationError{"size", "must be between 0 and 100"})
	}

	return errors
}

func joinValidationErrors(errs []ValidationError) string {
	msg := "validation failed: "
	for i, e := range errs {
		if i > 0 {
			msg += ", "
		}
		msg += e.Field + " (" + e.Message + ")"
	}
	return msg
}
