package recommend

import "errors"

// ErrNoMaterialsWithinBudget is returned when a budget filter removes every
// candidate. A hard error rather than an empty list, so callers cannot
// silently proceed with zero recommendations.
var ErrNoMaterialsWithinBudget = errors.New("no materials within budget limit")
