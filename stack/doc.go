// Package stack provides a small generic LIFO used by the skyline solvers
// as their monotonic index stack.
//
// What:
//
//   - Stack[T] is a slice-backed stack; Push, Pop and Peek are O(1) amortized.
//   - Pop and Peek report ok=false on an empty stack instead of panicking.
//   - Reset empties the stack but keeps the backing array for reuse.
//
// Why:
//
//	The histogram scan pushes every index once and pops it at most once,
//	so the stack is the whole of its O(N) amortized cost. Keeping the
//	type generic lets the same code hold plain indices or richer frames.
//
// Concurrency:
//
//	A Stack is not safe for concurrent use. Each solver invocation owns its
//	own instance.
package stack
