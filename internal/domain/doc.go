// Package domain contains the core data model of the service: the
// canonical flashcard and practice-evaluation records returned to
// callers, independent of any provider or transport concern.
package domain
