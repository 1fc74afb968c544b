// Package rider implements the Rider aggregate: a courier who can hold
// exactly one active home delivery at a time.
//
// Availability is the shared resource of the dispatch process. The
// aggregate checks the lock locally; repositories persist it with a
// conditional update so two dispatchers cannot both win. Release is a single
// conditional update by id in the repository, with no aggregate to load.
package rider
