/*
Package store implements the poll store: the single owner of the poll
collection and the local user's vote map.

# Persistence

The store mirrors every mutation to an injected KV before the operation
is considered complete. Exactly two keys are used:

	polls     - the full poll collection, as a JSON array
	userVotes - poll id to chosen option id, as a JSON object

Both are whole-value overwrites. On Load, a missing or unparseable value
falls back to an empty collection rather than an error.

# Operations

  - Add: insert a freshly built poll
  - Vote: record the user's single vote on an option (atomic with the
    vote-map entry)
  - Delete: remove a poll and purge its vote entry
  - JoinByCode: normalize user input and resolve it to an active poll
  - List, Get, HasVoted, UserVote: read side

A mutex serializes access; the HTTP layer's per-request goroutines are
the only concurrent callers, and there is still exactly one logical
writer.
*/
package store
