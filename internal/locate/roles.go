package locate

// Role is the semantic category a PDF plays within a case folder,
// assigned by fuzzy filename matching rather than explicit metadata.
type Role int

const (
	RoleExecutionForm Role = iota
	RoleAcknowledgmentReceipt
	RoleVehicleRegistry
	RoleInitialRegistrationForm
	RolePowerOfAttorney
	RoleUniqueLetter
	RolePledgeDocument
)

func (r Role) String() string {
	switch r {
	case RoleExecutionForm:
		return "execution_form"
	case RoleAcknowledgmentReceipt:
		return "acknowledgment_receipt"
	case RoleVehicleRegistry:
		return "vehicle_registry"
	case RoleInitialRegistrationForm:
		return "initial_registration_form"
	case RolePowerOfAttorney:
		return "power_of_attorney"
	case RoleUniqueLetter:
		return "unique_letter"
	case RolePledgeDocument:
		return "pledge_document"
	default:
		return "unknown"
	}
}

type roleSpec struct {
	// patterns are tried in order; the first one that clears the
	// threshold decides the match. UniqueLetter carries alternates
	// because the letter circulates under several names.
	patterns []string
	// versioned roles disambiguate duplicates by numeric filename prefix.
	versioned bool
}

var roleSpecs = map[Role]roleSpec{
	RoleExecutionForm:           {patterns: []string{"formulario de ejecucion"}, versioned: true},
	RoleAcknowledgmentReceipt:   {patterns: []string{"acuse electronicos"}},
	RoleVehicleRegistry:         {patterns: []string{"runt"}},
	RoleInitialRegistrationForm: {patterns: []string{"formulario de inscripcion inicial"}},
	RolePowerOfAttorney:         {patterns: []string{"poder"}},
	RoleUniqueLetter:            {patterns: []string{"carta unica", "reconocer", "fiserv"}},
	RolePledgeDocument:          {patterns: []string{"prenda"}},
}

// Find resolves role among the folder's candidates at the given
// threshold. Returns ErrNoMatch when no pattern of the role matches.
func Find(cands []Candidate, role Role, threshold int) (Match, error) {
	spec := roleSpecs[role]
	for _, pattern := range spec.patterns {
		var (
			m   Match
			err error
		)
		if spec.versioned {
			m, err = BestVersioned(cands, pattern, threshold)
		} else {
			m, err = Best(cands, pattern, threshold)
		}
		if err == nil {
			return m, nil
		}
	}
	return Match{}, ErrNoMatch
}

// Exists reports whether any candidate fills the role. Used for the
// existence-only flags where no extraction follows.
func Exists(cands []Candidate, role Role, threshold int) bool {
	_, err := Find(cands, role, threshold)
	return err == nil
}
