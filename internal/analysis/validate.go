package analysis

import (
	"github.com/fintrack-dev/fintrack/internal/model"
)

// ValidateColumns checks that every column exists in the table and holds
// numeric values. It returns the first failure as *model.UnknownColumnError
// or *model.NonNumericColumnError.
func ValidateColumns(t *model.Table, columns []string) error {
	for _, c := range columns {
		if _, err := t.Numeric(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCategories checks the category set itself and then that the
// table carries every column it names.
func ValidateCategories(t *model.Table, cats model.CategorySet) error {
	if err := cats.Validate(); err != nil {
		return err
	}
	if err := ValidateColumns(t, []string{cats.Income}); err != nil {
		return err
	}
	if err := ValidateColumns(t, cats.Expenses); err != nil {
		return err
	}
	return ValidateColumns(t, cats.Savings)
}
