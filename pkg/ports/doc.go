/*
Package ports defines the driven ports (interfaces) for the Tally container.

These decouple the adapters (CLI, HTTP) from the concrete transition logic,
so any conforming reducer can be plugged into the same surfaces.

# Key Interfaces

  - Reducer: the pure state-transition contract.

RunReducerContract is a reusable test suite that verifies an implementation
against the contract.
*/
package ports
