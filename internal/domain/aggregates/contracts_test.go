package aggregates

import "testing"

func TestContractsOwnTheirTransactions(t *testing.T) {
	for _, c := range []Contract{FavoritesAggregateContract, ArticleAggregateContract} {
		if !c.RequiresAggregateOwnedTx() {
			t.Fatalf("%s: expected aggregate-owned tx", c.Name)
		}
		if c.ReadPolicy != ReadPolicyInvariantScoped {
			t.Fatalf("%s: read policy want=%s got=%s", c.Name, ReadPolicyInvariantScoped, c.ReadPolicy)
		}
	}
	if (Contract{}).RequiresAggregateOwnedTx() {
		t.Fatalf("zero contract: expected caller-owned")
	}
}
