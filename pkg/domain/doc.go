/*
Package domain contains the core models and arithmetic of the dial simulator.

It defines the rotation commands and the circular dial that consumes them. This
package is kept pure and free of I/O, logging and persistence: callers feed it
parsed commands and receive numeric results.

# Key Entities

  - Direction: Backward ("L") or Forward ("R"), carrying a signed unit multiplier.
  - Command: A direction plus a non-negative magnitude, parsed from a token like "L68".
  - Dial: The pointer position on a fixed perimeter. Mutated only through Apply.
  - Step: The outcome of applying one command (start, end, zero crossings).
*/
package domain
