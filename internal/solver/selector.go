package solver

// candidate pairs the demand chosen by the variable selector with its
// (cached) domain list.
type candidate struct {
	demand  courseYear
	domains []domainValue
}

// selectNextDemand applies the minimum-remaining-values heuristic: among
// demands that still have pending sections, pick the one with the fewest
// legal domain values so infeasible branches fail close to the root.
//
// A demand whose domain list is empty can never be completed, so it is
// returned immediately as a dead-end signal. ok is false when nothing is
// pending, which is the success condition of the search.
func (index *entityIndex) selectNextDemand(pending map[courseYear]sectionSet) (best candidate, ok bool) {
	minSize := -1
	for _, demand := range index.demandOrder {
		if len(pending[demand]) == 0 {
			continue
		}
		domains := index.validDomains(demand.course)
		if len(domains) == 0 {
			return candidate{demand: demand}, true
		}
		if minSize == -1 || len(domains) < minSize {
			minSize = len(domains)
			best = candidate{demand: demand, domains: domains}
			ok = true
		}
	}
	return best, ok
}
