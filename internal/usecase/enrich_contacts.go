package usecase

import (
	"context"
	"log"

	"github.com/prospectfinder/backend/internal/entity"
)

// EnrichUseCase reveals contact details for a batch of search results and
// persists what came back. Contacts fail independently: one refused reveal
// never discards the rest of the batch.
type EnrichUseCase struct {
	Gateway      VendorGateway
	ProspectRepo entity.ProspectRepositoryInterface
	CompanyRepo  entity.CompanyRepositoryInterface
}

func NewEnrichUseCase(gateway VendorGateway, prospectRepo entity.ProspectRepositoryInterface, companyRepo entity.CompanyRepositoryInterface) *EnrichUseCase {
	return &EnrichUseCase{Gateway: gateway, ProspectRepo: prospectRepo, CompanyRepo: companyRepo}
}

func (uc *EnrichUseCase) Execute(ctx context.Context, userID int64, input EnrichInput) (*EnrichOutput, error) {
	// Fail fast before the vendor call: an invalid batch must spend no
	// credits.
	if errs := ValidateEnrichInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}

	result, err := uc.Gateway.EnrichContacts(ctx, input.RequestID, input.ContactIDs, input.RevealEmails, input.RevealPhones)
	if err != nil {
		return nil, &TechnicalError{Code: "VENDOR_ERROR", Message: "enrichment call failed: " + err.Error()}
	}

	out := &EnrichOutput{CreditsCharged: result.CreditsCharged}

	for _, contact := range result.Contacts {
		if !contact.IsSuccess {
			reason := contact.Reason
			if reason == "" {
				reason = "vendor reported failure"
			}
			out.Failed++
			out.Errors = append(out.Errors, EnrichContactError{ContactID: contact.ContactID, Reason: reason})
			continue
		}

		prospect := NormalizeContact(contact.Data)
		prospect.UserID = userID
		if prospect.ContactID == "" {
			prospect.ContactID = contact.ContactID
		}

		if err := uc.ProspectRepo.Upsert(ctx, &prospect); err != nil {
			out.Failed++
			out.Errors = append(out.Errors, EnrichContactError{ContactID: contact.ContactID, Reason: "failed to save: " + err.Error()})
			continue
		}

		// Company data rides along with the contact; losing it degrades
		// the record but the contact itself is already saved.
		if company := NormalizeCompany(contact.Data); company != nil && uc.CompanyRepo != nil {
			if err := uc.CompanyRepo.Upsert(ctx, company); err != nil {
				log.Printf("company upsert failed for contact %s: %v", contact.ContactID, err)
				out.Errors = append(out.Errors, EnrichContactError{ContactID: contact.ContactID, Reason: "failed to save company: " + err.Error()})
			} else {
				out.SavedCompanies++
			}
		}

		out.Saved++
		out.Prospects = append(out.Prospects, prospect)
	}

	return out, nil
}
