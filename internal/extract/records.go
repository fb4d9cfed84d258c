package extract

// DebtorRecord holds the identity fields pulled from the debtor section
// of an execution form. Nil means the field was not found; a resolved
// field is always trimmed and cased, never an empty string.
type DebtorRecord struct {
	IdentificationNumber *string
	FirstSurname         *string
	SecondSurname        *string
	FirstName            *string
	SecondName           *string
	Country              *string
	Department           *string
	Municipality         *string
	Address              *string
	MobilePhone          *string
	Email                *string
	// FullName is the space-joined concatenation of surnames and given
	// names, missing parts omitted. Empty when nothing resolved.
	FullName string
}

// VehicleRecord holds the attributes pulled from a vehicle registry
// report, under the same presence/absence discipline.
type VehicleRecord struct {
	Plate       *string
	ServiceType *string
	Brand       *string
	Line        *string
	Model       *string
	Color       *string
}
