// Package ledger implements an in-memory, append-only chain of blocks linked
// by hash, used to record cast votes.
//
// # Core Components
//
// Blockchain: An ordered log of blocks. The first block appended is the
// genesis block and carries GenesisPrevHash; every later block carries the
// hash of its predecessor.
//
// Block: A single record holding the previous hash, its own hash and one
// vote as payload.
//
// Seal: A Schnorr signature over the length and tail hash of a finished
// chain.
//
// # Hash Policy
//
// A chain hashes each block either over its own payload (PerBlock, the
// default) or over the concatenation of every payload so far (Cumulative).
// The policy is chosen once with WithHashPolicy and Verify applies the same
// one. The digests are not cryptographic; collisions are possible and are not
// reported as errors.
//
// # Usage
//
// Create a chain with NewBlockchain, Append payloads in order and range over
// All to read them back oldest first. Verify can be called at any time to
// re-check the linkage of the whole chain.
package ledger
