package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound signals that a requested record does not exist
var ErrNotFound = errors.New("record not found")

// MissingFieldsError reports which required session fields were absent
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// InvalidCategoryError reports a category outside the accepted set
type InvalidCategoryError struct {
	Category string
	Valid    []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q, valid categories: %s", e.Category, strings.Join(e.Valid, ", "))
}

// InvalidDifficultyError reports a difficulty outside the accepted set
type InvalidDifficultyError struct {
	Difficulty string
	Valid      []string
}

func (e *InvalidDifficultyError) Error() string {
	return fmt.Sprintf("invalid difficulty %q, valid difficulties: %s", e.Difficulty, strings.Join(e.Valid, ", "))
}
