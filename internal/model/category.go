package model

import "fmt"

// CategorySet names the income column and the ordered expense and savings
// category columns. Order drives tie-breaks and chart label order.
type CategorySet struct {
	Income   string
	Expenses []string
	Savings  []string
}

// Validate checks that the income column is named, that neither list has
// duplicates and that the lists are disjoint.
func (c CategorySet) Validate() error {
	if c.Income == "" {
		return fmt.Errorf("income column is not set")
	}

	seen := map[string]string{c.Income: "income"}
	check := func(kind string, names []string) error {
		for _, n := range names {
			if n == "" {
				return fmt.Errorf("%s category with empty name", kind)
			}
			if prev, ok := seen[n]; ok {
				return fmt.Errorf("%s category %q already listed as %s", kind, n, prev)
			}
			seen[n] = kind
		}
		return nil
	}
	if err := check("expense", c.Expenses); err != nil {
		return err
	}
	return check("savings", c.Savings)
}
