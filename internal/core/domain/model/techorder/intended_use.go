package techorder

import (
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// Use describes how the buyer intends to employ the technology.
type Use int

const (
	UseUnknown Use = iota
	UsePrivate
	UseEnterprise
	UseLocalGovernment
	UseProvincialGovernment
	UseFederalGovernment
	UseOther
)

func getUseStrings() map[Use]string {
	return map[Use]string{
		UsePrivate:              "private",
		UseEnterprise:           "enterprise",
		UseLocalGovernment:      "local_government",
		UseProvincialGovernment: "provincial_government",
		UseFederalGovernment:    "federal_government",
		UseOther:                "other",
	}
}

// UseFromString parses the wire representation of an intended use.
func UseFromString(s string) (Use, error) {
	for use, str := range getUseStrings() {
		if str == s {
			return use, nil
		}
	}
	return UseUnknown, errs.NewValueIsInvalidError("use " + s)
}

// Validate checks that the value is one of the declared uses.
func (u Use) Validate() error {
	if _, ok := getUseStrings()[u]; !ok {
		return errs.NewValueIsInvalidError("use")
	}
	return nil
}

// String returns the lowercase wire representation.
func (u Use) String() string {
	if str, ok := getUseStrings()[u]; ok {
		return str
	}
	return "unknown"
}

// Funding describes the buyer's funding situation for the acquisition.
type Funding int

const (
	FundingUnknown Funding = iota
	FundingHas
	FundingWants
	FundingNotNeeded
)

func getFundingStrings() map[Funding]string {
	return map[Funding]string{
		FundingHas:       "has_funding",
		FundingWants:     "wants_funding",
		FundingNotNeeded: "no_need_funding",
	}
}

// FundingFromString parses the wire representation of a funding situation.
func FundingFromString(s string) (Funding, error) {
	for funding, str := range getFundingStrings() {
		if str == s {
			return funding, nil
		}
	}
	return FundingUnknown, errs.NewValueIsInvalidError("funding " + s)
}

// Validate checks that the value is one of the declared funding situations.
func (f Funding) Validate() error {
	if _, ok := getFundingStrings()[f]; !ok {
		return errs.NewValueIsInvalidError("funding")
	}
	return nil
}

// String returns the lowercase wire representation.
func (f Funding) String() string {
	if str, ok := getFundingStrings()[f]; ok {
		return str
	}
	return "unknown"
}
