package types

// QueryOptions carries optional, advisory read filters. Each adapter honors
// the subset it understands and ignores the rest; callers never assume a
// filter was applied server-side and must tolerate larger result sets.
//
// Zero values mean "not set". Active is a pointer so that false is a real
// filter value distinct from absent.
type QueryOptions struct {
	From            string // inclusive ISO date lower bound
	To              string // inclusive ISO date upper bound
	Category        string // expense category name
	Query           string // free-text search
	ProductID       string // scope lots/movements to one product
	Limit           int
	Offset          int
	Active          *bool // product active flag
	IncludeReplaced bool  // include replaced sales
	ExcludeCC       bool  // exclude current-account settlement sales
	Days            int   // overdue horizon in days
}
