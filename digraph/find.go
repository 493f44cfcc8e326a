package digraph

// FindArc returns the first arc from s to t strictly after prev in s's
// out-list, scanning from the start when prev is NoArc. prev should be
// a previous result for the same (s, t); a dead handle ends the chain
// with NoArc, while a live arc of another node leaves the stepping fast
// path walking that node's list instead. Linear in the out-degree; the
// arcindex package answers the same query in logarithmic time, and this
// scan doubles as the oracle its tests compare against.
func FindArc(v View, s, t Node, prev Arc) Arc {
	if st, ok := v.(OutStepper); ok {
		var a Arc
		if prev == NoArc {
			a = st.FirstOut(s)
		} else {
			a = st.NextOut(prev)
		}
		for ; a != NoArc; a = st.NextOut(a) {
			if v.Target(a) == t {
				return a
			}
		}

		return NoArc
	}

	out := v.OutArcs(s)
	i := 0
	if prev != NoArc {
		for i < len(out) && out[i] != prev {
			i++
		}
		i++
	}
	for ; i < len(out); i++ {
		if v.Target(out[i]) == t {
			return out[i]
		}
	}

	return NoArc
}

// ArcsBetween returns every arc from s to t in out-list order.
func ArcsBetween(v View, s, t Node) []Arc {
	var out []Arc
	for a := FindArc(v, s, t, NoArc); a != NoArc; a = FindArc(v, s, t, a) {
		out = append(out, a)
	}

	return out
}
