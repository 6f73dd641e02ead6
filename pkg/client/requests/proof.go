package requests

// IncludeProof tells the transport whether a proof should accompany the
// response. The zero value is IncludeProofNo.
type IncludeProof int

const (
	IncludeProofNo IncludeProof = iota
	IncludeProofYes
)

// Prove reports whether a proof was requested.
func (p IncludeProof) Prove() bool {
	return p == IncludeProofYes
}

func (p IncludeProof) String() string {
	if p == IncludeProofYes {
		return "yes"
	}
	return "no"
}

// MarshalText encodes the flag as "yes" or "no".
func (p IncludeProof) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (p *IncludeProof) UnmarshalText(text []byte) error {
	switch string(text) {
	case "yes":
		*p = IncludeProofYes
	case "no":
		*p = IncludeProofNo
	default:
		return ErrInvalidIncludeProof.Wrapf("%q", string(text))
	}
	return nil
}

// IncludeProofFromBool maps true to IncludeProofYes.
func IncludeProofFromBool(prove bool) IncludeProof {
	if prove {
		return IncludeProofYes
	}
	return IncludeProofNo
}
