package info

import "context"

// Repository defines the data access contract.
type Repository interface {
	// ListLetterMap returns the main transliteration rows ordered by id.
	ListLetterMap(ctx context.Context) ([]LetterMapping, error)

	// ListLetterMapSubRows returns the companion sub-rows ordered by id.
	ListLetterMapSubRows(ctx context.Context) ([]LetterMapping, error)

	// ListHeaders returns the section header rows ordered by id.
	ListHeaders(ctx context.Context) ([]HeaderRow, error)

	// ListVowelMethods returns the vowel-marking rows ordered by id.
	ListVowelMethods(ctx context.Context) ([]VowelMethod, error)
}
