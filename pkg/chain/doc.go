/*
Package chain implements discrete-time finite-state Markov chains.

A Model is an immutable, validated transition table: for every state it
holds the probability distribution over successor states. Two operations
cover the classic questions asked of a chain:

  - Simulate draws one realized sample path using an injectable source of
    uniform randomness (inverse-CDF categorical sampling).
  - Propagate evolves a whole probability distribution forward through the
    transition table, yielding the exact marginal distribution at each step.

Analysis helpers compute the stationary distribution (power iteration),
check the detailed-balance condition, and classify the chain as ergodic
(irreducible and aperiodic) or not.

All iteration happens in sorted state order, so results are reproducible
given the same seed regardless of map layout.
*/
package chain
