/*
Package domain contains the core domain models for the Tally state container.

It defines the two value types every other layer is built on: the State
snapshot and the Action that describes an intended change. This package is
kept pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - State: the current data snapshot, a single-field counter record.
  - Action: a description of an intended change, discriminated by Type.
  - Step: one entry of a trace, pairing an action with the state it produced.
*/
package domain
