package resolve

import "github.com/dromeroa/expedientes/internal/extract"

// CaseRecord is the consolidated row produced for one case folder. A
// record exists only for folders where an execution form was resolved.
type CaseRecord struct {
	// Folder is the numeric case folder name.
	Folder string

	// FormFile is the chosen execution form filename; FormScore is its
	// fuzzy match score.
	FormFile  string
	FormScore int

	// RegistryFile and ReceiptFile are the chosen filenames for the
	// optional roles, nil when the role is absent.
	RegistryFile *string
	ReceiptFile  *string

	Amount           *string
	ExecutionDate    *string
	NotificationDate *string

	HasInitialRegistration bool
	HasPowerOfAttorney     bool
	HasUniqueLetter        bool
	HasVehicleRegistry     bool
	HasPledge              bool

	Debtor  extract.DebtorRecord
	Vehicle extract.VehicleRecord
}
