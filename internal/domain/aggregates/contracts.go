package aggregates

// WriteTxOwnership names who opens the transaction around a write.
type WriteTxOwnership string

const WriteTxOwnedByAggregate WriteTxOwnership = "aggregate_owned"

// ReadPolicy names which reads an aggregate is allowed to expose.
type ReadPolicy string

// ReadPolicyInvariantScoped: only the reads a write needs to check its invariant.
const ReadPolicyInvariantScoped ReadPolicy = "invariant_scoped_reads"

type Contract struct {
	Name             string
	WriteTxOwnership WriteTxOwnership
	ReadPolicy       ReadPolicy
	Notes            string
}

// Aggregate is implemented by every write boundary.
type Aggregate interface {
	Contract() Contract
}

func (c Contract) RequiresAggregateOwnedTx() bool {
	return c.WriteTxOwnership == WriteTxOwnedByAggregate
}
