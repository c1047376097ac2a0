// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Farmer is the core entity in the system, representing a registered seller account.
type Farmer struct {
	ID           uint   // Surrogate identifier assigned by the database on creation.
	Username     string // Unique login identifier; products reference their owner through it.
	Name         string // The farmer's display name.
	PasswordHash string // The bcrypt digest of the password. Never the plaintext, never exposed in responses.
	Gender       string // Free-text descriptive field.
	Location     string // Free-text descriptive field.
}
