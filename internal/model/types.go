// Package model defines shared data structures.
package model

// Config defines practice settings.
type Config struct {
	Lang        string
	Duration    int
	PhrasesPath string
	BankPath    string
}

// Phrase is a target phrase stored in the phrase bank.
type Phrase struct {
	ID   int64
	Lang string
	Text string
}
