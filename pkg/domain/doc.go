/*
Package domain contains the core domain models for the Ribbon machine.

It defines the fundamental entities of a single-tape Turing machine: the
validated transition table (Program), the sparse bi-infinite Tape, the
mutable MachineState, and the TransitionRecord describing each executed
step. This package is kept pure and free of external dependencies like I/O
or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Program: An immutable, deterministic transition function keyed by (state, symbol).
  - Tape: A sparse, bi-infinite tape where unwritten cells read as the blank symbol.
  - MachineState: The runtime snapshot of one session (state, tape, head, halt flags).
  - TransitionRecord: A structural description of one executed step or halt event.
*/
package domain
