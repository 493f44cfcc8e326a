package digraph

// Observer receives change events from one of a Digraph's feeds (the node
// feed or the arc feed). Events arrive synchronously on the mutating
// goroutine, in attach order, exactly once per mutation.
//
// Removed and RemovedMany fire while the item is still linked, so
// observers may read its endpoints. Added and AddedMany fire after the
// item is fully linked. Rebuilt announces a bulk Build; Cleared announces
// a Clear. Attaching or detaching an observer during delivery is not
// supported.
type Observer[I comparable] interface {
	// Added reports a single new item.
	Added(item I)

	// AddedMany reports a batch of new items, in creation order.
	AddedMany(items []I)

	// Removed reports one item about to be unlinked.
	Removed(item I)

	// RemovedMany reports a batch of items about to be unlinked.
	RemovedMany(items []I)

	// Rebuilt reports that the graph was constructed in bulk; observers
	// should re-derive their state from the graph.
	Rebuilt()

	// Cleared reports that every item is about to vanish.
	Cleared()
}

// feed fans events out to the attached observers in attach order.
type feed[I comparable] struct {
	observers []Observer[I]
}

func (f *feed[I]) attach(o Observer[I]) {
	f.observers = append(f.observers, o)
}

// detach removes the first observer equal to o; unknown observers are a
// no-op.
func (f *feed[I]) detach(o Observer[I]) {
	for i, cur := range f.observers {
		if cur == o {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

func (f *feed[I]) added(item I) {
	for _, o := range f.observers {
		o.Added(item)
	}
}

func (f *feed[I]) addedMany(items []I) {
	for _, o := range f.observers {
		o.AddedMany(items)
	}
}

func (f *feed[I]) removed(item I) {
	for _, o := range f.observers {
		o.Removed(item)
	}
}

func (f *feed[I]) removedMany(items []I) {
	for _, o := range f.observers {
		o.RemovedMany(items)
	}
}

func (f *feed[I]) rebuilt() {
	for _, o := range f.observers {
		o.Rebuilt()
	}
}

func (f *feed[I]) cleared() {
	for _, o := range f.observers {
		o.Cleared()
	}
}
