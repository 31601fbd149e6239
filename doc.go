// Package arenalist implements a doubly linked list whose nodes live in a
// single growable array.
//
// # Overview
//
// A List supports the full list, deque and stack operation set: positional
// access, insertion and removal at either end or at any index, value search,
// bulk operations and bidirectional iterators. Unlike container/list it
// never allocates per element. Each element occupies a slot in an arena, and
// slots link to each other by index rather than by pointer. This is useful for:
//
//   - Queues and stacks with heavy churn that should not pressure the GC
//   - Lists whose elements are inserted or removed mid-iteration
//   - Workloads needing both O(1) end operations and stable cursors
//
// # Basic Usage
//
//	l, err := arenalist.New[string](16)
//	if err != nil {
//		return err
//	}
//
//	l.AddLast("b")
//	l.AddFirst("a")
//	l.Push("top")           // stack
//	first, _ := l.Poll()    // queue
//
//	for i, v := range l.All() {
//		fmt.Println(i, v)
//	}
//
// # Memory Layout
//
// Live slots form a circular doubly linked list starting at the head slot.
// There is no sentinel node. Free slots form a singly linked chain through
// the same next field, so a removed slot is reused by the next insertion in
// O(1). The arena only grows. Growth copies every slot to the same index in a
// larger array, so iterator cursors stay valid across it.
//
// How much the arena grows is decided by an expansion.Policy, chosen with
// WithPolicy. The default, expansion.MemorySaving, adds about an eighth.
//
// # Performance Characteristics
//
//   - AddFirst, AddLast, RemoveFirst, RemoveLast: O(1) amortized
//   - Iterator Add, Remove, Set: O(1) amortized
//   - Get, Set, Insert, RemoveAt: O(min(i, Len-i))
//   - Contains, IndexOf, RemoveFirstOccurrence: O(Len)
//   - AddAll, InsertAll: grow the arena at most once
//   - RemoveAll, RetainAll: a single pass
//
// # Thread Safety
//
// A List is not safe for concurrent use. Iterators detect structural
// modification made behind their back and report ErrConcurrentModification
// on their next operation. This is a debugging aid, not a synchronization
// mechanism.
//
// # Metrics and Monitoring
//
//	m := l.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Println(m) // len=3 cap=16 free=13 grows=0 ...
package arenalist
