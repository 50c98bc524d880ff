package btok

// CheckName reports whether name is a valid CV-Certificate authority/holder
// name: 8 to 12 characters, all within the PrintableString alphabet
// (letters, digits, space, and ' = ( ) + , - . / : ?).
func CheckName(name string) bool {
	if len(name) < 8 || len(name) > 12 {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isPrintableChar(name[i]) {
			return false
		}
	}
	return true
}

func isPrintableChar(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case ' ', '\'', '=', '(', ')', '+', ',', '-', '.', '/', ':', '?':
		return true
	}
	return false
}

// is30DayMonth mirrors btokCVCDateIsValid's exclusion list rather than a
// general calendar table: 31-day months are the default, d == 31 is
// rejected for the four 30-day months, and February is handled separately
// below. The century rule is intentionally skipped, same as the source:
// STB 34.101.79 was adopted in 2019, so no two-digit year before 2100 needs
// it.
func is30DayMonth(m int) bool {
	switch m {
	case 4, 6, 9, 11:
		return true
	}
	return false
}

// CheckDate reports whether d is a valid calendar date: year 19-99 (no
// certificate predates 2019), month 1-12, day 1-31 with short-month and leap
// rules, mod-4 leap years only.
func CheckDate(d Date) bool {
	for _, b := range d {
		if b > 9 {
			return false
		}
	}
	y, m, day := d.Year(), d.Month(), d.Day()
	if y < 19 {
		return false
	}
	if m < 1 || m > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	if day == 31 && is30DayMonth(m) {
		return false
	}
	if m == 2 && (day > 29 || (day == 29 && y%4 != 0)) {
		return false
	}
	return true
}

// DateLeq reports whether left <= right, assuming both are already valid
// per CheckDate. Comparison is lexicographic over the six digit octets,
// which is equivalent to numeric YYMMDD comparison.
func DateLeq(left, right Date) bool {
	for i := 0; i < 6; i++ {
		if left[i] != right[i] {
			return left[i] < right[i]
		}
	}
	return true
}

// seemsValid is a cheap shape check distinct from Check: it confirms the
// precondition Wrap/EncodeBody rely on (valid names, valid and ordered
// dates, a plausible public key length) without running the more
// expensive curve-membership validation Check performs via the
// signature adapter. It backs an invariant assertion, not a user-facing
// error path — callers that need the latter use Check.
func seemsValid(cvc *CVC) bool {
	if cvc == nil {
		return false
	}
	if !CheckName(cvc.Authority) || !CheckName(cvc.Holder) {
		return false
	}
	if !CheckDate(cvc.From) || !CheckDate(cvc.Until) || !DateLeq(cvc.From, cvc.Until) {
		return false
	}
	_, ok := tierFromPubLen(len(cvc.PubKey))
	return ok
}

// checkWithAdapter is Check's implementation, parameterized on the adapter
// used for the public-key curve-membership check. Check uses
// defaultPubkeyAdapter; Engine.Check uses the Engine's own adapter, so a
// certificate built with a non-default SignatureAdapter (via WithAdapter) is
// validated against the same curve it was signed over.
func checkWithAdapter(cvc *CVC, adapter SignatureAdapter) error {
	if cvc == nil {
		return newError(CodeBadInput, "cvc is nil")
	}
	if !CheckName(cvc.Authority) || !CheckName(cvc.Holder) {
		return newError(CodeBadName, "authority/holder name fails PrintableString constraints")
	}
	if !CheckDate(cvc.From) || !CheckDate(cvc.Until) || !DateLeq(cvc.From, cvc.Until) {
		return newError(CodeBadDate, "from/until dates are invalid or out of order")
	}
	t, ok := tierFromPubLen(len(cvc.PubKey))
	if !ok {
		return newError(CodeBadInput, "public key has an unsupported length")
	}
	if err := adapter.ValPubkey(t, cvc.PubKey); err != nil {
		return wrapError(CodeBadPubkey, "validating public key", err)
	}
	return nil
}

// check2WithAdapter is Check2's implementation, parameterized the same way
// checkWithAdapter is.
func check2WithAdapter(cvc, cvca *CVC, adapter SignatureAdapter) error {
	if err := checkWithAdapter(cvc, adapter); err != nil {
		return err
	}
	if cvca == nil {
		return newError(CodeBadInput, "issuer cvc is nil")
	}
	if cvc.Authority != cvca.Holder {
		return newError(CodeBadName, "certificate authority does not match issuer holder")
	}
	if !CheckDate(cvca.From) || !CheckDate(cvca.Until) ||
		!DateLeq(cvca.From, cvc.From) || !DateLeq(cvc.From, cvca.Until) {
		return newError(CodeBadDate, "certificate validity period falls outside issuer's")
	}
	return nil
}

// Check validates a fully-populated CVC's own fields: names, dates, and
// public key. It does not check the signature; use Unwrap for that. It
// validates the public key against the default bign adapter; use
// Engine.Check to validate against a particular Engine's own adapter.
func Check(cvc *CVC) error {
	return checkWithAdapter(cvc, defaultPubkeyAdapter)
}

// Check2 validates cvc the way Check does, then additionally checks it
// against its presumed issuer cvca: cvc.Authority must equal cvca.Holder,
// and cvc.From must fall within [cvca.From, cvca.Until].
func Check2(cvc, cvca *CVC) error {
	return check2WithAdapter(cvc, cvca, defaultPubkeyAdapter)
}

// Check validates cvc the way the package-level Check does, but validates
// the public key against e's own SignatureAdapter rather than the default
// bign adapter.
func (e *Engine) Check(cvc *CVC) error {
	return checkWithAdapter(cvc, e.adapter)
}

// Check2 validates cvc and cvca the way the package-level Check2 does, but
// validates public keys against e's own SignatureAdapter.
func (e *Engine) Check2(cvc, cvca *CVC) error {
	return check2WithAdapter(cvc, cvca, e.adapter)
}
