package enums

import (
	"fmt"
	"strings"
)

// ExpenseCategory classifies a seller-recorded expense.
type ExpenseCategory string

const (
	ExpenseCategoryMaterials ExpenseCategory = "materials"
	ExpenseCategoryShipping  ExpenseCategory = "shipping"
	ExpenseCategoryMarketing ExpenseCategory = "marketing"
	ExpenseCategoryFees      ExpenseCategory = "fees"
	ExpenseCategoryEquipment ExpenseCategory = "equipment"
	ExpenseCategoryOther     ExpenseCategory = "other"
)

var validExpenseCategories = []ExpenseCategory{
	ExpenseCategoryMaterials,
	ExpenseCategoryShipping,
	ExpenseCategoryMarketing,
	ExpenseCategoryFees,
	ExpenseCategoryEquipment,
	ExpenseCategoryOther,
}

// String implements fmt.Stringer.
func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c ExpenseCategory) IsValid() bool {
	for _, candidate := range validExpenseCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseExpenseCategory converts raw input into an ExpenseCategory.
func ParseExpenseCategory(value string) (ExpenseCategory, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, candidate := range validExpenseCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid expense category %q", value)
}
