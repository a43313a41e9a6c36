// Package forms holds the editable drafts behind the entity forms.
// Each form validates its draft in a fixed field order on submit; the
// first failing rule short-circuits with exactly one warning and no
// network call. Submit callbacks are injected so the forms stay
// ignorant of the transport.
package forms

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate backs the length and range rules. Rules whose semantics the
// validator cannot express exactly (email, phone) use the dedicated
// patterns below.
var validate = validator.New()

// emailPattern is the deliberately simple local@domain.tld check the
// forms enforce; the backend holds the authoritative rule.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ComputeDiscountPrice derives the discounted price from the base price
// and a percentage in [0,100], rounded to two decimals. The discount
// price is never entered directly, always recomputed from these two
// inputs.
func ComputeDiscountPrice(price, percentage float64) float64 {
	discounted := price - price*percentage/100
	return math.Round(discounted*100) / 100
}
