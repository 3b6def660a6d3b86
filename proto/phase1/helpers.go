package phase1

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kr/pretty"
	"github.com/mohae/deepcopy"
)

// equal compares two records field by field. Nil and empty slices are the same value on the
// wire, so they compare equal here as well. The structs are compared by value so cmp does not
// dispatch back into the pointer Equal methods.
func equal[T any](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return cmp.Equal(*a, *b, cmpopts.EquateEmpty())
}

func copyOf[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return deepcopy.Copy(v).(*T)
}

func toString(v interface{}) string {
	return pretty.Sprint(v)
}

// Equal reports whether both Eth1Data records hold the same values.
func (e *Eth1Data) Equal(other *Eth1Data) bool {
	return equal(e, other)
}

// Copy returns a deep copy of the Eth1Data.
func (e *Eth1Data) Copy() *Eth1Data {
	return copyOf(e)
}

func (e *Eth1Data) String() string {
	return toString(e)
}

// Equal reports whether both BeaconBlockHeader records hold the same values.
func (b *BeaconBlockHeader) Equal(other *BeaconBlockHeader) bool {
	return equal(b, other)
}

// Copy returns a deep copy of the BeaconBlockHeader.
func (b *BeaconBlockHeader) Copy() *BeaconBlockHeader {
	return copyOf(b)
}

func (b *BeaconBlockHeader) String() string {
	return toString(b)
}

// Equal reports whether both SignedBeaconBlockHeader records hold the same values.
func (s *SignedBeaconBlockHeader) Equal(other *SignedBeaconBlockHeader) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the SignedBeaconBlockHeader.
func (s *SignedBeaconBlockHeader) Copy() *SignedBeaconBlockHeader {
	return copyOf(s)
}

func (s *SignedBeaconBlockHeader) String() string {
	return toString(s)
}

// Equal reports whether both Checkpoint records hold the same values.
func (c *Checkpoint) Equal(other *Checkpoint) bool {
	return equal(c, other)
}

// Copy returns a deep copy of the Checkpoint.
func (c *Checkpoint) Copy() *Checkpoint {
	return copyOf(c)
}

func (c *Checkpoint) String() string {
	return toString(c)
}

// Equal reports whether both AttestationData records hold the same values.
func (a *AttestationData) Equal(other *AttestationData) bool {
	return equal(a, other)
}

// Copy returns a deep copy of the AttestationData.
func (a *AttestationData) Copy() *AttestationData {
	return copyOf(a)
}

func (a *AttestationData) String() string {
	return toString(a)
}

// Equal reports whether both Attestation records hold the same values.
func (a *Attestation) Equal(other *Attestation) bool {
	return equal(a, other)
}

// Copy returns a deep copy of the Attestation.
func (a *Attestation) Copy() *Attestation {
	return copyOf(a)
}

func (a *Attestation) String() string {
	return toString(a)
}

// Equal reports whether both IndexedAttestation records hold the same values.
func (i *IndexedAttestation) Equal(other *IndexedAttestation) bool {
	return equal(i, other)
}

// Copy returns a deep copy of the IndexedAttestation.
func (i *IndexedAttestation) Copy() *IndexedAttestation {
	return copyOf(i)
}

func (i *IndexedAttestation) String() string {
	return toString(i)
}

// Equal reports whether both AttesterSlashing records hold the same values.
func (a *AttesterSlashing) Equal(other *AttesterSlashing) bool {
	return equal(a, other)
}

// Copy returns a deep copy of the AttesterSlashing.
func (a *AttesterSlashing) Copy() *AttesterSlashing {
	return copyOf(a)
}

func (a *AttesterSlashing) String() string {
	return toString(a)
}

// Equal reports whether both ProposerSlashing records hold the same values.
func (p *ProposerSlashing) Equal(other *ProposerSlashing) bool {
	return equal(p, other)
}

// Copy returns a deep copy of the ProposerSlashing.
func (p *ProposerSlashing) Copy() *ProposerSlashing {
	return copyOf(p)
}

func (p *ProposerSlashing) String() string {
	return toString(p)
}

// Equal reports whether both DepositData records hold the same values.
func (d *DepositData) Equal(other *DepositData) bool {
	return equal(d, other)
}

// Copy returns a deep copy of the DepositData.
func (d *DepositData) Copy() *DepositData {
	return copyOf(d)
}

func (d *DepositData) String() string {
	return toString(d)
}

// Equal reports whether both Deposit records hold the same values.
func (d *Deposit) Equal(other *Deposit) bool {
	return equal(d, other)
}

// Copy returns a deep copy of the Deposit.
func (d *Deposit) Copy() *Deposit {
	return copyOf(d)
}

func (d *Deposit) String() string {
	return toString(d)
}

// Equal reports whether both VoluntaryExit records hold the same values.
func (v *VoluntaryExit) Equal(other *VoluntaryExit) bool {
	return equal(v, other)
}

// Copy returns a deep copy of the VoluntaryExit.
func (v *VoluntaryExit) Copy() *VoluntaryExit {
	return copyOf(v)
}

func (v *VoluntaryExit) String() string {
	return toString(v)
}

// Equal reports whether both SignedVoluntaryExit records hold the same values.
func (s *SignedVoluntaryExit) Equal(other *SignedVoluntaryExit) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the SignedVoluntaryExit.
func (s *SignedVoluntaryExit) Copy() *SignedVoluntaryExit {
	return copyOf(s)
}

func (s *SignedVoluntaryExit) String() string {
	return toString(s)
}

// Equal reports whether both ShardState records hold the same values.
func (s *ShardState) Equal(other *ShardState) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the ShardState.
func (s *ShardState) Copy() *ShardState {
	return copyOf(s)
}

func (s *ShardState) String() string {
	return toString(s)
}

// Equal reports whether both ShardTransition records hold the same values.
func (s *ShardTransition) Equal(other *ShardTransition) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the ShardTransition.
func (s *ShardTransition) Copy() *ShardTransition {
	return copyOf(s)
}

func (s *ShardTransition) String() string {
	return toString(s)
}

// Equal reports whether both CustodySlashing records hold the same values.
func (c *CustodySlashing) Equal(other *CustodySlashing) bool {
	return equal(c, other)
}

// Copy returns a deep copy of the CustodySlashing.
func (c *CustodySlashing) Copy() *CustodySlashing {
	return copyOf(c)
}

func (c *CustodySlashing) String() string {
	return toString(c)
}

// Equal reports whether both SignedCustodySlashing records hold the same values.
func (s *SignedCustodySlashing) Equal(other *SignedCustodySlashing) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the SignedCustodySlashing.
func (s *SignedCustodySlashing) Copy() *SignedCustodySlashing {
	return copyOf(s)
}

func (s *SignedCustodySlashing) String() string {
	return toString(s)
}

// Equal reports whether both CustodyKeyReveal records hold the same values.
func (c *CustodyKeyReveal) Equal(other *CustodyKeyReveal) bool {
	return equal(c, other)
}

// Copy returns a deep copy of the CustodyKeyReveal.
func (c *CustodyKeyReveal) Copy() *CustodyKeyReveal {
	return copyOf(c)
}

func (c *CustodyKeyReveal) String() string {
	return toString(c)
}

// Equal reports whether both EarlyDerivedSecretReveal records hold the same values.
func (e *EarlyDerivedSecretReveal) Equal(other *EarlyDerivedSecretReveal) bool {
	return equal(e, other)
}

// Copy returns a deep copy of the EarlyDerivedSecretReveal.
func (e *EarlyDerivedSecretReveal) Copy() *EarlyDerivedSecretReveal {
	return copyOf(e)
}

func (e *EarlyDerivedSecretReveal) String() string {
	return toString(e)
}

// Equal reports whether both BeaconBlockBody records hold the same values.
func (b *BeaconBlockBody) Equal(other *BeaconBlockBody) bool {
	return equal(b, other)
}

// Copy returns a deep copy of the BeaconBlockBody.
func (b *BeaconBlockBody) Copy() *BeaconBlockBody {
	return copyOf(b)
}

func (b *BeaconBlockBody) String() string {
	return toString(b)
}

// Equal reports whether both BeaconBlock records hold the same values.
func (b *BeaconBlock) Equal(other *BeaconBlock) bool {
	return equal(b, other)
}

// Copy returns a deep copy of the BeaconBlock.
func (b *BeaconBlock) Copy() *BeaconBlock {
	return copyOf(b)
}

func (b *BeaconBlock) String() string {
	return toString(b)
}

// Equal reports whether both SignedBeaconBlock records hold the same values.
func (s *SignedBeaconBlock) Equal(other *SignedBeaconBlock) bool {
	return equal(s, other)
}

// Copy returns a deep copy of the SignedBeaconBlock.
func (s *SignedBeaconBlock) Copy() *SignedBeaconBlock {
	return copyOf(s)
}

func (s *SignedBeaconBlock) String() string {
	return toString(s)
}
