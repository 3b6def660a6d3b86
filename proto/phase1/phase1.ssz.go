package phase1

import (
	"math/bits"

	ssz "github.com/ferranbt/fastssz"
	"github.com/pkg/errors"
	fieldparams "github.com/prysmaticlabs/prysm-phase1-bridge/config/fieldparams"
)

var (
	// ErrNilField is returned when a required nested record is missing during merkleization.
	ErrNilField = errors.New("nil nested record")
	// ErrEmptyBitlist is returned for a bitlist without its length bit.
	ErrEmptyBitlist = errors.New("bitlist is empty")
	// ErrIncorrectVectorLength is returned when a fixed vector has the wrong number of elements.
	ErrIncorrectVectorLength = errors.New("vector does not have the correct length")
)

func putBytesN(hh ssz.HashWalker, field string, b []byte, n int) error {
	if size := len(b); size != n {
		return errors.Wrapf(ssz.ErrBytesLength, "%s: got %d bytes, want %d", field, size, n)
	}
	hh.PutBytes(b)
	return nil
}

func checkList(field string, num, limit uint64) error {
	if num > limit {
		return errors.Wrapf(ssz.ErrIncorrectListSize, "%s: %d items, limit %d", field, num, limit)
	}
	return nil
}

// chunkLimit rounds a list limit in chunks up to a power of two. The root is unchanged, since
// merkleization pads to the next power of two anyway, but the proof tree built by GetTree
// accepts only power of two limits.
func chunkLimit(limit uint64) uint64 {
	if limit <= 1 {
		return 1
	}
	return 1 << bits.Len64(limit-1)
}

type hashable interface {
	HashTreeRootWith(hh ssz.HashWalker) error
}

// putContainerList merkleizes a list of records with the list length mixed in.
func putContainerList[T hashable](hh ssz.HashWalker, field string, elems []T, limit uint64) error {
	subIndx := hh.Index()
	num := uint64(len(elems))
	if err := checkList(field, num, limit); err != nil {
		return err
	}
	for _, elem := range elems {
		if err := elem.HashTreeRootWith(hh); err != nil {
			return err
		}
	}
	hh.MerkleizeWithMixin(subIndx, num, chunkLimit(limit))
	return nil
}

// HashTreeRoot ssz hashes the Eth1Data object
func (e *Eth1Data) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(e)
}

// HashTreeRootWith ssz hashes the Eth1Data object with a hasher
func (e *Eth1Data) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'DepositRoot'
	if err = putBytesN(hh, "Eth1Data.DepositRoot", e.DepositRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (1) 'DepositCount'
	hh.PutUint64(e.DepositCount)

	// Field (2) 'BlockHash'
	if err = putBytesN(hh, "Eth1Data.BlockHash", e.BlockHash, 32); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the Eth1Data object
func (e *Eth1Data) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(e)
}

// HashTreeRoot ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockHeader object with a hasher
func (b *BeaconBlockHeader) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(b.Slot)

	// Field (1) 'ProposerIndex'
	hh.PutUint64(b.ProposerIndex)

	// Field (2) 'ParentRoot'
	if err = putBytesN(hh, "BeaconBlockHeader.ParentRoot", b.ParentRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (3) 'StateRoot'
	if err = putBytesN(hh, "BeaconBlockHeader.StateRoot", b.StateRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (4) 'BodyRoot'
	if err = putBytesN(hh, "BeaconBlockHeader.BodyRoot", b.BodyRoot, fieldparams.RootLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the BeaconBlockHeader object
func (b *BeaconBlockHeader) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(b)
}

// HashTreeRoot ssz hashes the SignedBeaconBlockHeader object
func (s *SignedBeaconBlockHeader) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlockHeader object with a hasher
func (s *SignedBeaconBlockHeader) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Message'
	if s.Message == nil {
		return errors.Wrap(ErrNilField, "SignedBeaconBlockHeader.Message")
	}
	if err = s.Message.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Signature'
	if err = putBytesN(hh, "SignedBeaconBlockHeader.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the SignedBeaconBlockHeader object
func (s *SignedBeaconBlockHeader) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}

// HashTreeRoot ssz hashes the Checkpoint object
func (c *Checkpoint) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the Checkpoint object with a hasher
func (c *Checkpoint) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Epoch'
	hh.PutUint64(c.Epoch)

	// Field (1) 'Root'
	if err = putBytesN(hh, "Checkpoint.Root", c.Root, fieldparams.RootLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the Checkpoint object
func (c *Checkpoint) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(c)
}

// HashTreeRoot ssz hashes the AttestationData object
func (a *AttestationData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the AttestationData object with a hasher
func (a *AttestationData) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(a.Slot)

	// Field (1) 'Index'
	hh.PutUint64(a.Index)

	// Field (2) 'BeaconBlockRoot'
	if err = putBytesN(hh, "AttestationData.BeaconBlockRoot", a.BeaconBlockRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (3) 'Source'
	if a.Source == nil {
		return errors.Wrap(ErrNilField, "AttestationData.Source")
	}
	if err = a.Source.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (4) 'Target'
	if a.Target == nil {
		return errors.Wrap(ErrNilField, "AttestationData.Target")
	}
	if err = a.Target.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (5) 'ShardHeadRoot'
	if err = putBytesN(hh, "AttestationData.ShardHeadRoot", a.ShardHeadRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (6) 'ShardTransitionRoot'
	if err = putBytesN(hh, "AttestationData.ShardTransitionRoot", a.ShardTransitionRoot, fieldparams.RootLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the AttestationData object
func (a *AttestationData) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(a)
}

// HashTreeRoot ssz hashes the Attestation object
func (a *Attestation) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the Attestation object with a hasher
func (a *Attestation) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'AggregationBits'
	if len(a.AggregationBits) == 0 {
		return errors.Wrap(ErrEmptyBitlist, "Attestation.AggregationBits")
	}
	hh.PutBitlist(a.AggregationBits, fieldparams.MaxValidatorsPerCommittee)

	// Field (1) 'Data'
	if a.Data == nil {
		return errors.Wrap(ErrNilField, "Attestation.Data")
	}
	if err = a.Data.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (2) 'CustodyBitsBlocks'
	{
		subIndx := hh.Index()
		num := uint64(len(a.CustodyBitsBlocks))
		if err = checkList("Attestation.CustodyBitsBlocks", num, fieldparams.MaxShardBlocksPerAttestation); err != nil {
			return
		}
		for _, elem := range a.CustodyBitsBlocks {
			if len(elem) == 0 {
				return errors.Wrap(ErrEmptyBitlist, "Attestation.CustodyBitsBlocks")
			}
			hh.PutBitlist(elem, fieldparams.MaxValidatorsPerCommittee)
		}
		hh.MerkleizeWithMixin(subIndx, num, chunkLimit(fieldparams.MaxShardBlocksPerAttestation))
	}

	// Field (3) 'Signature'
	if err = putBytesN(hh, "Attestation.Signature", a.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the Attestation object
func (a *Attestation) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(a)
}

// HashTreeRoot ssz hashes the IndexedAttestation object
func (i *IndexedAttestation) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(i)
}

// HashTreeRootWith ssz hashes the IndexedAttestation object with a hasher
func (i *IndexedAttestation) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Committee'
	{
		subIndx := hh.Index()
		num := uint64(len(i.Committee))
		if err = checkList("IndexedAttestation.Committee", num, fieldparams.MaxValidatorsPerCommittee); err != nil {
			return
		}
		for _, v := range i.Committee {
			hh.AppendUint64(v)
		}
		hh.FillUpTo32()
		hh.MerkleizeWithMixin(subIndx, num, chunkLimit((fieldparams.MaxValidatorsPerCommittee*8+31)/32))
	}

	// Field (1) 'Attestation'
	if i.Attestation == nil {
		return errors.Wrap(ErrNilField, "IndexedAttestation.Attestation")
	}
	if err = i.Attestation.HashTreeRootWith(hh); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the IndexedAttestation object
func (i *IndexedAttestation) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(i)
}

// HashTreeRoot ssz hashes the AttesterSlashing object
func (a *AttesterSlashing) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(a)
}

// HashTreeRootWith ssz hashes the AttesterSlashing object with a hasher
func (a *AttesterSlashing) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Attestation1'
	if a.Attestation1 == nil {
		return errors.Wrap(ErrNilField, "AttesterSlashing.Attestation1")
	}
	if err = a.Attestation1.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Attestation2'
	if a.Attestation2 == nil {
		return errors.Wrap(ErrNilField, "AttesterSlashing.Attestation2")
	}
	if err = a.Attestation2.HashTreeRootWith(hh); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the AttesterSlashing object
func (a *AttesterSlashing) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(a)
}

// HashTreeRoot ssz hashes the ProposerSlashing object
func (p *ProposerSlashing) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(p)
}

// HashTreeRootWith ssz hashes the ProposerSlashing object with a hasher
func (p *ProposerSlashing) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'SignedHeader1'
	if p.SignedHeader1 == nil {
		return errors.Wrap(ErrNilField, "ProposerSlashing.SignedHeader1")
	}
	if err = p.SignedHeader1.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'SignedHeader2'
	if p.SignedHeader2 == nil {
		return errors.Wrap(ErrNilField, "ProposerSlashing.SignedHeader2")
	}
	if err = p.SignedHeader2.HashTreeRootWith(hh); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the ProposerSlashing object
func (p *ProposerSlashing) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(p)
}

// HashTreeRoot ssz hashes the DepositData object
func (d *DepositData) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(d)
}

// HashTreeRootWith ssz hashes the DepositData object with a hasher
func (d *DepositData) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'PublicKey'
	if err = putBytesN(hh, "DepositData.PublicKey", d.PublicKey, fieldparams.BLSPubkeyLength); err != nil {
		return
	}

	// Field (1) 'WithdrawalCredentials'
	if err = putBytesN(hh, "DepositData.WithdrawalCredentials", d.WithdrawalCredentials, 32); err != nil {
		return
	}

	// Field (2) 'Amount'
	hh.PutUint64(d.Amount)

	// Field (3) 'Signature'
	if err = putBytesN(hh, "DepositData.Signature", d.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the DepositData object
func (d *DepositData) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(d)
}

// HashTreeRoot ssz hashes the Deposit object
func (d *Deposit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(d)
}

// HashTreeRootWith ssz hashes the Deposit object with a hasher
func (d *Deposit) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Proof'
	{
		if size := len(d.Proof); size != fieldparams.DepositProofLength {
			return errors.Wrapf(ErrIncorrectVectorLength, "Deposit.Proof: got %d, want %d", size, fieldparams.DepositProofLength)
		}
		subIndx := hh.Index()
		for _, i := range d.Proof {
			if len(i) != 32 {
				return errors.Wrap(ssz.ErrBytesLength, "Deposit.Proof")
			}
			hh.Append(i)
		}
		hh.Merkleize(subIndx)
	}

	// Field (1) 'Data'
	if d.Data == nil {
		return errors.Wrap(ErrNilField, "Deposit.Data")
	}
	if err = d.Data.HashTreeRootWith(hh); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the Deposit object
func (d *Deposit) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(d)
}

// HashTreeRoot ssz hashes the VoluntaryExit object
func (v *VoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(v)
}

// HashTreeRootWith ssz hashes the VoluntaryExit object with a hasher
func (v *VoluntaryExit) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Epoch'
	hh.PutUint64(v.Epoch)

	// Field (1) 'ValidatorIndex'
	hh.PutUint64(v.ValidatorIndex)

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the VoluntaryExit object
func (v *VoluntaryExit) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(v)
}

// HashTreeRoot ssz hashes the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedVoluntaryExit object with a hasher
func (s *SignedVoluntaryExit) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Message'
	if s.Message == nil {
		return errors.Wrap(ErrNilField, "SignedVoluntaryExit.Message")
	}
	if err = s.Message.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Signature'
	if err = putBytesN(hh, "SignedVoluntaryExit.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the SignedVoluntaryExit object
func (s *SignedVoluntaryExit) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}

// HashTreeRoot ssz hashes the ShardState object
func (s *ShardState) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the ShardState object with a hasher
func (s *ShardState) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(s.Slot)

	// Field (1) 'GasPrice'
	hh.PutUint64(s.GasPrice)

	// Field (2) 'LatestBlockRoot'
	if err = putBytesN(hh, "ShardState.LatestBlockRoot", s.LatestBlockRoot, fieldparams.RootLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the ShardState object
func (s *ShardState) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}

// HashTreeRoot ssz hashes the ShardTransition object
func (s *ShardTransition) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the ShardTransition object with a hasher
func (s *ShardTransition) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'StartSlot'
	hh.PutUint64(s.StartSlot)

	// Field (1) 'ShardBlockLengths'
	{
		subIndx := hh.Index()
		num := uint64(len(s.ShardBlockLengths))
		if err = checkList("ShardTransition.ShardBlockLengths", num, fieldparams.MaxShardBlocksPerAttestation); err != nil {
			return
		}
		for _, v := range s.ShardBlockLengths {
			hh.AppendUint64(v)
		}
		hh.FillUpTo32()
		hh.MerkleizeWithMixin(subIndx, num, chunkLimit((fieldparams.MaxShardBlocksPerAttestation*8+31)/32))
	}

	// Field (2) 'ShardDataRoots'
	{
		subIndx := hh.Index()
		num := uint64(len(s.ShardDataRoots))
		if err = checkList("ShardTransition.ShardDataRoots", num, fieldparams.MaxShardBlocksPerAttestation); err != nil {
			return
		}
		for _, i := range s.ShardDataRoots {
			if len(i) != 32 {
				return errors.Wrap(ssz.ErrBytesLength, "ShardTransition.ShardDataRoots")
			}
			hh.Append(i)
		}
		hh.MerkleizeWithMixin(subIndx, num, chunkLimit(fieldparams.MaxShardBlocksPerAttestation))
	}

	// Field (3) 'ShardStates'
	if err = putContainerList(hh, "ShardTransition.ShardStates", s.ShardStates, fieldparams.MaxShardBlocksPerAttestation); err != nil {
		return
	}

	// Field (4) 'ProposerSignatureAggregate'
	if err = putBytesN(hh, "ShardTransition.ProposerSignatureAggregate", s.ProposerSignatureAggregate, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the ShardTransition object
func (s *ShardTransition) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}

// HashTreeRoot ssz hashes the CustodySlashing object
func (c *CustodySlashing) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the CustodySlashing object with a hasher
func (c *CustodySlashing) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'DataIndex'
	hh.PutUint64(c.DataIndex)

	// Field (1) 'MaliciousValidatorIndex'
	hh.PutUint64(c.MaliciousValidatorIndex)

	// Field (2) 'Attestation'
	if c.Attestation == nil {
		return errors.Wrap(ErrNilField, "CustodySlashing.Attestation")
	}
	if err = c.Attestation.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (3) 'Whistleblower'
	hh.PutUint64(c.Whistleblower)

	// Field (4) 'ShardTransition'
	if c.ShardTransition == nil {
		return errors.Wrap(ErrNilField, "CustodySlashing.ShardTransition")
	}
	if err = c.ShardTransition.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (5) 'CustodySecret'
	if err = putBytesN(hh, "CustodySlashing.CustodySecret", c.CustodySecret, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	// Field (6) 'Data'
	{
		elemIndx := hh.Index()
		byteLen := uint64(len(c.Data))
		if err = checkList("CustodySlashing.Data", byteLen, fieldparams.MaxShardBlockSize); err != nil {
			return
		}
		hh.AppendBytes32(c.Data)
		hh.MerkleizeWithMixin(elemIndx, byteLen, chunkLimit((fieldparams.MaxShardBlockSize+31)/32))
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the CustodySlashing object
func (c *CustodySlashing) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(c)
}

// HashTreeRoot ssz hashes the SignedCustodySlashing object
func (s *SignedCustodySlashing) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedCustodySlashing object with a hasher
func (s *SignedCustodySlashing) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Message'
	if s.Message == nil {
		return errors.Wrap(ErrNilField, "SignedCustodySlashing.Message")
	}
	if err = s.Message.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Signature'
	if err = putBytesN(hh, "SignedCustodySlashing.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the SignedCustodySlashing object
func (s *SignedCustodySlashing) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}

// HashTreeRoot ssz hashes the CustodyKeyReveal object
func (c *CustodyKeyReveal) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(c)
}

// HashTreeRootWith ssz hashes the CustodyKeyReveal object with a hasher
func (c *CustodyKeyReveal) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'RevealerIndex'
	hh.PutUint64(c.RevealerIndex)

	// Field (1) 'Reveal'
	if err = putBytesN(hh, "CustodyKeyReveal.Reveal", c.Reveal, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the CustodyKeyReveal object
func (c *CustodyKeyReveal) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(c)
}

// HashTreeRoot ssz hashes the EarlyDerivedSecretReveal object
func (e *EarlyDerivedSecretReveal) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(e)
}

// HashTreeRootWith ssz hashes the EarlyDerivedSecretReveal object with a hasher
func (e *EarlyDerivedSecretReveal) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'RevealedIndex'
	hh.PutUint64(e.RevealedIndex)

	// Field (1) 'Epoch'
	hh.PutUint64(e.Epoch)

	// Field (2) 'Reveal'
	if err = putBytesN(hh, "EarlyDerivedSecretReveal.Reveal", e.Reveal, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	// Field (3) 'MaskerIndex'
	hh.PutUint64(e.MaskerIndex)

	// Field (4) 'Mask'
	if err = putBytesN(hh, "EarlyDerivedSecretReveal.Mask", e.Mask, 32); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the EarlyDerivedSecretReveal object
func (e *EarlyDerivedSecretReveal) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(e)
}

// HashTreeRoot ssz hashes the BeaconBlockBody object
func (b *BeaconBlockBody) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlockBody object with a hasher
func (b *BeaconBlockBody) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'RandaoReveal'
	if err = putBytesN(hh, "BeaconBlockBody.RandaoReveal", b.RandaoReveal, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	// Field (1) 'Eth1Data'
	if b.Eth1Data == nil {
		return errors.Wrap(ErrNilField, "BeaconBlockBody.Eth1Data")
	}
	if err = b.Eth1Data.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (2) 'Graffiti'
	if err = putBytesN(hh, "BeaconBlockBody.Graffiti", b.Graffiti, 32); err != nil {
		return
	}

	// Field (3) 'ProposerSlashings'
	if err = putContainerList(hh, "BeaconBlockBody.ProposerSlashings", b.ProposerSlashings, fieldparams.MaxProposerSlashings); err != nil {
		return
	}

	// Field (4) 'AttesterSlashings'
	if err = putContainerList(hh, "BeaconBlockBody.AttesterSlashings", b.AttesterSlashings, fieldparams.MaxAttesterSlashings); err != nil {
		return
	}

	// Field (5) 'Attestations'
	if err = putContainerList(hh, "BeaconBlockBody.Attestations", b.Attestations, fieldparams.MaxAttestations); err != nil {
		return
	}

	// Field (6) 'Deposits'
	if err = putContainerList(hh, "BeaconBlockBody.Deposits", b.Deposits, fieldparams.MaxDeposits); err != nil {
		return
	}

	// Field (7) 'VoluntaryExits'
	if err = putContainerList(hh, "BeaconBlockBody.VoluntaryExits", b.VoluntaryExits, fieldparams.MaxVoluntaryExits); err != nil {
		return
	}

	// Field (8) 'CustodySlashings'
	if err = putContainerList(hh, "BeaconBlockBody.CustodySlashings", b.CustodySlashings, fieldparams.MaxCustodySlashings); err != nil {
		return
	}

	// Field (9) 'CustodyKeyReveals'
	if err = putContainerList(hh, "BeaconBlockBody.CustodyKeyReveals", b.CustodyKeyReveals, fieldparams.MaxCustodyKeyReveals); err != nil {
		return
	}

	// Field (10) 'EarlyDerivedSecretReveals'
	if err = putContainerList(hh, "BeaconBlockBody.EarlyDerivedSecretReveals", b.EarlyDerivedSecretReveals, fieldparams.MaxEarlyDerivedSecretReveals); err != nil {
		return
	}

	// Field (11) 'ShardTransitions'
	{
		if size := len(b.ShardTransitions); size != fieldparams.MaxShards {
			return errors.Wrapf(ErrIncorrectVectorLength, "BeaconBlockBody.ShardTransitions: got %d, want %d", size, fieldparams.MaxShards)
		}
		subIndx := hh.Index()
		for _, elem := range b.ShardTransitions {
			if elem == nil {
				return errors.Wrap(ErrNilField, "BeaconBlockBody.ShardTransitions")
			}
			if err = elem.HashTreeRootWith(hh); err != nil {
				return
			}
		}
		hh.Merkleize(subIndx)
	}

	// Field (12) 'LightClientBits'
	if err = putBytesN(hh, "BeaconBlockBody.LightClientBits", b.LightClientBits, fieldparams.LightClientCommitteeSize/8); err != nil {
		return
	}

	// Field (13) 'LightClientSignature'
	if err = putBytesN(hh, "BeaconBlockBody.LightClientSignature", b.LightClientSignature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the BeaconBlockBody object
func (b *BeaconBlockBody) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(b)
}

// HashTreeRoot ssz hashes the BeaconBlock object
func (b *BeaconBlock) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(b)
}

// HashTreeRootWith ssz hashes the BeaconBlock object with a hasher
func (b *BeaconBlock) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Slot'
	hh.PutUint64(b.Slot)

	// Field (1) 'ProposerIndex'
	hh.PutUint64(b.ProposerIndex)

	// Field (2) 'ParentRoot'
	if err = putBytesN(hh, "BeaconBlock.ParentRoot", b.ParentRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (3) 'StateRoot'
	if err = putBytesN(hh, "BeaconBlock.StateRoot", b.StateRoot, fieldparams.RootLength); err != nil {
		return
	}

	// Field (4) 'Body'
	if b.Body == nil {
		return errors.Wrap(ErrNilField, "BeaconBlock.Body")
	}
	if err = b.Body.HashTreeRootWith(hh); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the BeaconBlock object
func (b *BeaconBlock) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(b)
}

// HashTreeRoot ssz hashes the SignedBeaconBlock object
func (s *SignedBeaconBlock) HashTreeRoot() ([32]byte, error) {
	return ssz.HashWithDefaultHasher(s)
}

// HashTreeRootWith ssz hashes the SignedBeaconBlock object with a hasher
func (s *SignedBeaconBlock) HashTreeRootWith(hh ssz.HashWalker) (err error) {
	indx := hh.Index()

	// Field (0) 'Message'
	if s.Message == nil {
		return errors.Wrap(ErrNilField, "SignedBeaconBlock.Message")
	}
	if err = s.Message.HashTreeRootWith(hh); err != nil {
		return
	}

	// Field (1) 'Signature'
	if err = putBytesN(hh, "SignedBeaconBlock.Signature", s.Signature, fieldparams.BLSSignatureLength); err != nil {
		return
	}

	hh.Merkleize(indx)
	return
}

// GetTree ssz hashes the SignedBeaconBlock object
func (s *SignedBeaconBlock) GetTree() (*ssz.Node, error) {
	return ssz.ProofTree(s)
}
